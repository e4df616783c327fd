// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"cmp"
	"slices"

	"github.com/gogpu/gputypes"
)

// FeedbackMode is how a program writes captured outputs.
type FeedbackMode uint8

const (
	// FeedbackNone means the program captures nothing.
	FeedbackNone FeedbackMode = iota

	// FeedbackInterleaved writes all captured outputs into one buffer.
	FeedbackInterleaved

	// FeedbackSeparate writes each captured output into its own buffer.
	FeedbackSeparate
)

// CapturedOutput is a vertex-stage output written to a feedback buffer.
type CapturedOutput struct {
	Name   string
	Offset uint32
	Size   uint32
	Type   gputypes.VertexFormat
}

// Program is the read-only view of a linked shader program.
type Program interface {
	// ID returns the driver-side program name.
	ID() NativeID

	// OutputSlot returns the color slot bound to a fragment output.
	OutputSlot(name string) (slot uint32, ok bool)

	// UniformLocation returns the location of a uniform.
	UniformLocation(name string) (location uint32, ok bool)

	// TransformFeedbackMode returns how captured outputs are written.
	TransformFeedbackMode() FeedbackMode

	// CapturedOutputs returns the captured outputs in capture order.
	CapturedOutputs() []CapturedOutput
}

// NamedColor is a color attachment of a multi-output target, bound to the
// fragment output of the same name.
type NamedColor struct {
	Name    string
	Texture Texture
}

// namedID is a color output recorded at construction.
type namedID struct {
	name string
	id   NativeID
}

// resolveOutputs maps each named color to the program's slot for it.
// The result is sorted by slot so it does not depend on declaration order.
// Slots are looked up on every call because the program may change.
// Two names on one slot fail with an *OutputError.
func resolveOutputs(program Program, colors []namedID) ([]ColorSlot, error) {
	slots := make([]ColorSlot, 0, len(colors))
	owner := make(map[uint32]string, len(colors))
	for _, c := range colors {
		slot, ok := program.OutputSlot(c.name)
		if !ok {
			return nil, &OutputError{Name: c.name}
		}
		if prev, taken := owner[slot]; taken {
			return nil, &OutputError{Name: c.name, Conflict: prev, Slot: slot}
		}
		owner[slot] = c.name
		slots = append(slots, ColorSlot{Slot: slot, Attachment: textureAttachment(c.id)})
	}
	slices.SortFunc(slots, func(a, b ColorSlot) int {
		return cmp.Compare(a.Slot, b.Slot)
	})
	return slots, nil
}

// declarationSlots assigns slots by declaration order.
func declarationSlots(colors []namedID) []ColorSlot {
	slots := make([]ColorSlot, len(colors))
	for i, c := range colors {
		slots[i] = ColorSlot{Slot: uint32(i), Attachment: textureAttachment(c.id)}
	}
	return slots
}

func textureAttachment(id NativeID) Attachment {
	return Attachment{Kind: ResolvedTexture, ID: id, BindPoint: BindTexture2D}
}
