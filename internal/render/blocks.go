// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"

	"github.com/MKhiriev/agent-chat/models"
)

// TimeFormat is the layout of message timestamps.
const TimeFormat = "15:04:05"

// ThinkingText is shown while a request is outstanding.
const ThinkingText = "Thinking..."

// Block is one display line.
type Block struct {
	// MessageID links the block to its transcript entry. Empty for the
	// thinking indicator.
	MessageID string
	Origin    models.Origin
	Text      string
	// Time is set on the first block of each message only.
	Time string
	// Thinking marks the transient busy indicator.
	Thinking bool
}

// Lines splits text on line breaks. "\r\n" counts as one break. Text
// without breaks, including the empty string, yields one line.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Blocks lays out transcript one block per line and appends the thinking
// indicator iff busy. transcript is not modified.
func Blocks(transcript []models.Message, busy bool) []Block {
	return layout(transcript, busy, func(m models.Message) string { return m.Text })
}

// MarkdownBlocks is Blocks with agent text rendered as markdown first. A
// message that fails to render is laid out as plain text.
func MarkdownBlocks(transcript []models.Message, busy bool, opts Options) []Block {
	return layout(transcript, busy, func(m models.Message) string {
		if m.IsUser() {
			return m.Text
		}
		out, err := Markdown(m.Text, opts)
		if err != nil {
			return m.Text
		}
		return out
	})
}

func layout(transcript []models.Message, busy bool, text func(models.Message) string) []Block {
	blocks := make([]Block, 0, len(transcript)+1)
	for _, msg := range transcript {
		for i, line := range Lines(text(msg)) {
			block := Block{MessageID: msg.ID, Origin: msg.Origin, Text: line}
			if i == 0 {
				block.Time = msg.Timestamp.Format(TimeFormat)
			}
			blocks = append(blocks, block)
		}
	}

	if busy {
		blocks = append(blocks, Block{Origin: models.OriginAgent, Text: ThinkingText, Thinking: true})
	}
	return blocks
}
