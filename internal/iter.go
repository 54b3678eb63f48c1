package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqLimit caps an iterator sequence at limit values.
// A limit of zero or less yields nothing.
func IterSeqLimit[T any](seq iter.Seq[T], limit int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if limit <= 0 {
			return
		}
		count := 0
		for val := range seq {
			if !yield(val) {
				return
			}
			count += 1
			if count >= limit {
				return
			}
		}
	}
}

// IterSeq2Limit caps a dual-return iterator sequence at limit values.
// A limit of zero or less yields nothing.
func IterSeq2Limit[T1 any, T2 any](seq iter.Seq2[T1, T2], limit int) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		if limit <= 0 {
			return
		}
		count := 0
		for val1, val2 := range seq {
			if !yield(val1, val2) {
				return
			}
			count += 1
			if count >= limit {
				return
			}
		}
	}
}
