// result.go: the externally observable outcome of a query.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

// Result is the tagged outcome of executing a query: either a successful
// reply or a rejection. The cache does not distinguish success from
// rejection for storage purposes — both are memoized identically.
type Result struct {
	reply    []byte
	reject   string
	isReject bool
}

// Reply builds a successful Result carrying the raw reply bytes.
func Reply(bytes []byte) Result {
	return Result{reply: bytes}
}

// Reject builds a rejection Result carrying the rejection reason.
func Reject(reason string) Result {
	return Result{reject: reason, isReject: true}
}

// IsReject reports whether this Result is a rejection.
func (r Result) IsReject() bool { return r.isReject }

// ReplyBytes returns the reply payload. Meaningless if IsReject is true.
func (r Result) ReplyBytes() []byte { return r.reply }

// RejectReason returns the rejection reason. Meaningless if IsReject is false.
func (r Result) RejectReason() string { return r.reject }

// CountBytes returns the storage footprint of the Result: the reply bytes
// or the reject string, whichever tag is active.
func (r Result) CountBytes() uint64 {
	if r.isReject {
		return uint64(len(r.reject))
	}
	return uint64(len(r.reply))
}
