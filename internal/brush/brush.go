/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package brush holds the blur brush parameters and applies a circular
// Gaussian blur to an RGBA buffer.
package brush

import "fmt"

// Limits bound how the brush reacts to adjustments. Values below 1 are treated as 1.
type Limits struct {
	RadiusStep   int
	StrengthStep int
	MinRadius    int
	MinStrength  int
}

// DefaultLimits mirrors the application defaults.
func DefaultLimits() Limits {
	return Limits{RadiusStep: 5, StrengthStep: 5, MinRadius: 1, MinStrength: 1}
}

// Brush is the current (radius, strength) pair.
// Radius is in original image pixels; Strength is the Gaussian kernel size and stays odd.
// There is no upper bound on either value.
type Brush struct {
	Radius   int
	Strength int
	limits   Limits
}

// New returns a brush with the given starting values, clamped to the limits.
func New(radius, strength int, limits Limits) Brush {
	limits.RadiusStep = max(limits.RadiusStep, 1)
	limits.StrengthStep = max(limits.StrengthStep, 1)
	limits.MinRadius = max(limits.MinRadius, 1)
	limits.MinStrength = max(limits.MinStrength, 1)
	return Brush{
		Radius:   max(radius, limits.MinRadius),
		Strength: ForceOdd(max(strength, limits.MinStrength)),
		limits:   limits,
	}
}

// Limits returns the effective limits.
func (b Brush) Limits() Limits { return b.limits }

// Grow increases the radius by one step.
func (b *Brush) Grow() { b.Radius += b.limits.RadiusStep }

// Shrink decreases the radius by one step, never going below the minimum.
func (b *Brush) Shrink() { b.Radius = max(b.limits.MinRadius, b.Radius-b.limits.RadiusStep) }

// Stronger increases the kernel size by one step and keeps it odd.
func (b *Brush) Stronger() { b.Strength = ForceOdd(b.Strength + b.limits.StrengthStep) }

// Weaker decreases the kernel size by one step, floors it at the minimum and keeps it odd.
func (b *Brush) Weaker() {
	b.Strength = ForceOdd(max(b.limits.MinStrength, b.Strength-b.limits.StrengthStep))
}

func (b Brush) String() string { return fmt.Sprintf("Radius: %d  Blur: %d", b.Radius, b.Strength) }

// ForceOdd rounds even values up to the next odd one.
func ForceOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}
