// SPDX-License-Identifier: MIT

package network

import "errors"

// Sentinel errors for network construction and loading.
var (
	// ErrDataLoad is returned when a backing network file is missing,
	// unreadable, undecodable or internally inconsistent.
	ErrDataLoad = errors.New("network: data load failed")

	// ErrEmptyName indicates a node set declared without a name.
	ErrEmptyName = errors.New("network: node set name is empty")

	// ErrDuplicateNodeSet indicates two node sets share a name.
	ErrDuplicateNodeSet = errors.New("network: duplicate node set")

	// ErrUnknownNodeSet indicates a relation references a node set that was
	// never declared.
	ErrUnknownNodeSet = errors.New("network: unknown node set")

	// ErrShapeMismatch indicates disagreeing sizes for a node set: labels,
	// declared size and relation dimensions must all match.
	ErrShapeMismatch = errors.New("network: shape mismatch")

	// ErrEmptyNodeSet indicates a node set whose size cannot be determined
	// or is zero.
	ErrEmptyNodeSet = errors.New("network: node set has no entities")

	// ErrDuplicateLabel indicates a label used twice within one node set.
	ErrDuplicateLabel = errors.New("network: duplicate label")

	// ErrInvalidWeight indicates a negative, NaN or infinite relation entry.
	ErrInvalidWeight = errors.New("network: invalid relation weight")

	// ErrNilMatrix indicates a relation without a matrix.
	ErrNilMatrix = errors.New("network: relation matrix is nil")
)
