// Package ingestion turns tenant documents, pasted text or scraped
// web pages, into embedded chunks the retrieval layer can search.
package ingestion

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Chunking parameters. Roughly 1000 characters per chunk with a
// 200-character tail carried into the next chunk for continuity.
const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 200
)

var (
	paragraphRe   = regexp.MustCompile(`\n\s*\n`)
	sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)
)

// ChunkText splits text into chunks at paragraph boundaries, carrying
// an overlap tail between consecutive chunks. Paragraph groups that
// still exceed the size are re-split on sentence boundaries, then word
// boundaries as a last resort.
func ChunkText(text string, chunkSize, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var paragraphs []string
	for _, p := range paragraphRe.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) == 0 {
		return nil
	}

	var chunks []string
	current := ""
	for _, para := range paragraphs {
		if current != "" && len(current)+len(para)+2 > chunkSize {
			chunks = append(chunks, strings.TrimSpace(current))
			if overlap > 0 && len(current) > overlap {
				current = current[runeBoundary(current, len(current)-overlap):] + "\n\n" + para
			} else {
				current = para
			}
			continue
		}
		if current != "" {
			current += "\n\n" + para
		} else {
			current = para
		}
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	var final []string
	for _, c := range chunks {
		if len(c) > chunkSize {
			final = append(final, splitOversized(c, chunkSize)...)
		} else {
			final = append(final, c)
		}
	}
	return final
}

// runeBoundary backs i up to the start of the rune it falls inside, so
// a byte-index cut never splits a multi-byte character.
func runeBoundary(s string, i int) int {
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// splitSentences cuts text after sentence-ending punctuation followed
// by whitespace.
func splitSentences(text string) []string {
	var out []string
	last := 0
	for _, loc := range sentenceEndRe.FindAllStringIndex(text, -1) {
		out = append(out, text[last:loc[0]+1])
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, text[last:])
	}
	return out
}

// splitOversized breaks a chunk that exceeds the size on sentence
// boundaries, accumulating sentences back up toward the size. A single
// sentence longer than the size is cut at the last space before it.
func splitOversized(chunk string, chunkSize int) []string {
	var sub []string
	current := ""

	for _, sentence := range splitSentences(chunk) {
		for len(sentence) > chunkSize {
			cut := strings.LastIndex(sentence[:chunkSize], " ")
			if cut <= 0 {
				cut = chunkSize
				for cut < len(sentence) && !utf8.RuneStart(sentence[cut]) {
					cut++
				}
			}
			if current != "" {
				sub = append(sub, strings.TrimSpace(current))
				current = ""
			}
			sub = append(sub, strings.TrimSpace(sentence[:cut]))
			sentence = strings.TrimSpace(sentence[cut:])
		}

		candidate := sentence
		if current != "" {
			candidate = current + " " + sentence
		}
		if len(candidate) > chunkSize && current != "" {
			sub = append(sub, strings.TrimSpace(current))
			current = sentence
		} else {
			current = candidate
		}
	}

	if strings.TrimSpace(current) != "" {
		sub = append(sub, strings.TrimSpace(current))
	}
	return sub
}
