// Package covmodel is a numeric toolbox for covariance models used in
// geostatistical spatial-random-field simulation — radial integration
// factors, anisotropy handling and parameter-bound arithmetic.
//
// 🚀 What is covmodel?
//
//	A small, pure, zero-state library that brings together:
//		• Radial factors: the volume element of n-dimensional spherical
//		  coordinates, for integrating radially symmetric functions
//		• Anisotropy: reconcile per-axis length scales and anisotropy
//		  ratios into one canonical (length scale, ratios) pair
//		• Bounds: validate parameter intervals, classify values against
//		  open/closed endpoints, derive sensible defaults
//
// ✨ Why choose covmodel?
//
//   - Pure functions only – no hidden state, safe from any goroutine
//   - Explicit errors – sentinel errors, errors.Is-friendly
//   - Faithful interval semantics – open/closed endpoints handled per tag
//   - Pure Go – no cgo
//
// Everything is organized under three subpackages:
//
//	anis/   — length-scale & anisotropy-ratio normalization
//	bounds/ — parameter bounds: validation, classification, defaults
//	radial/ — radial integration factors for n-dimensional space
//
// A covariance model exposes named parameters with bounds; covmodel/bounds
// checks candidate values against them, covmodel/anis turns user-facing
// length-scale specs into the canonical internal form, and covmodel/radial
// supplies the spherical-coordinate weight needed to integrate the model
// over n-dimensional space.
//
//	go get github.com/srfkit/covmodel
package covmodel
