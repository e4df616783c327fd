// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "fmt"

// MatchesTransformFeedback reports whether vertices of the given format can
// receive the captured outputs of program.
//
// The program must capture interleaved. Each captured output, in order, must
// appear in format with its name and type at the running offset, which
// advances by the output size.
func MatchesTransformFeedback(format VertexFormat, program Program) bool {
	if program.TransformFeedbackMode() != FeedbackInterleaved {
		return false
	}
	var offset uint32
	for _, out := range program.CapturedOutputs() {
		attr, ok := format.find(out.Name)
		if !ok || attr.Offset != offset || attr.Format != out.Type {
			return false
		}
		offset += out.Size
	}
	return true
}

// TransformFeedbackSession captures the vertex outputs of a program into a
// vertex buffer.
type TransformFeedbackSession struct {
	buffer  VertexBuffer
	program Program
}

// NewTransformFeedbackSession validates that buffer can receive the captured
// outputs of program.
func NewTransformFeedbackSession(ctx *Context, buffer VertexBuffer, program Program) (*TransformFeedbackSession, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if err := ctx.check(); err != nil {
		return nil, err
	}
	if !ctx.caps.TransformFeedback {
		return nil, ErrTransformFeedbackUnsupported
	}
	if buffer == nil {
		return nil, fmt.Errorf("%w: feedback buffer", ErrNilResource)
	}
	if !MatchesTransformFeedback(buffer.Format(), program) {
		return nil, fmt.Errorf("%w: program %d", ErrFeedbackMismatch, program.ID())
	}
	return &TransformFeedbackSession{buffer: buffer, program: program}, nil
}

// Buffer returns the capture buffer.
func (s *TransformFeedbackSession) Buffer() VertexBuffer { return s.buffer }

// Program returns the capturing program.
func (s *TransformFeedbackSession) Program() Program { return s.program }
