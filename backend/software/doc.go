// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software is the CPU reference driver for fbo.
//
// It allocates textures, render buffers and vertex and index buffers in
// memory, executes clears and scaled color blits on *image.RGBA, and
// records draw calls so tests and tools can inspect exactly what a surface
// submitted. Draws are not rasterized.
//
// Importing the package registers it as the "software" backend.
//
// Coordinates follow the framebuffer convention: rectangles are measured from
// the bottom-left corner, while images are stored top row first.
package software
