// Package kernel implements the locally-adjusted expected convolution core:
// named square odd-sided weight arrays and the three-boundary-policy
// convolution (zero-fill for data, one-fill for the NaN indicator, flipped
// true-convolution kernel application) that rescales a tile's raw expected
// by the ratio of kernel-summed observed over kernel-summed expected.
//
// It knows nothing about bin coordinates, weights, or pixel emission — that
// lives in dotcall, which calls Convolve once per named kernel.
package kernel
