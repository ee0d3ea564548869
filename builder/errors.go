// SPDX-License-Identifier: MIT
// Package: graphdp/builder
//
// errors.go: sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor that could not run at all.
var ErrConstructFailed = errors.New("builder: construction failed")
