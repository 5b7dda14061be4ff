package simulator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/duke-git/lancet/v2/cryptor"

	"ainexus/server/internal/catalog"
)

// positiveWords and negativeWords drive the keyword sentiment scorer. Matching
// is substring containment on the lowercased input, one hit per list word.
var positiveWords = []string{"love", "great", "amazing", "excellent", "wonderful", "fantastic", "good", "perfect"}

var negativeWords = []string{"hate", "terrible", "awful", "bad", "horrible", "worst", "disappointing"}

// captions is the fixed pool the caption generator indexes into.
var captions = []string{
	"A person walking through a busy city street with tall buildings in the background",
	"A beautiful landscape with mountains, trees, and a clear blue sky",
	"A group of people sitting around a table in a modern office environment",
	"A close-up view of colorful flowers in a garden setting",
	"An urban scene with cars, pedestrians, and architectural details visible",
}

const (
	summarySuffix = "This represents a condensed version of the original text, highlighting the main points and key information."
	captionSuffix = "This image shows detailed visual elements with good composition and lighting."
)

// transform dispatches the input through the mock transformation for the
// given model type.
func transform(modelType catalog.ModelType, input string) string {
	switch modelType {
	case catalog.ModelSummarization:
		return summarize(input)
	case catalog.ModelSentiment:
		return scoreSentiment(input)
	case catalog.ModelImageCaption:
		return caption(input)
	default:
		return echo(input)
	}
}

// summarize fakes text summarization by keeping the leading sentences.
// Inputs with at most two "."-separated segments come back trimmed and
// otherwise untouched.
func summarize(text string) string {
	sentences := strings.Split(text, ".")
	if len(sentences) <= 2 {
		return strings.TrimSpace(text)
	}

	keep := sentences[:2]
	if len(sentences) == 3 {
		keep = sentences[:1]
	}

	var parts []string
	for _, s := range keep {
		if t := strings.TrimSpace(s); t != "" {
			parts = append(parts, t)
		}
	}
	summary := strings.Join(parts, ". ")
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}

	return fmt.Sprintf("Summary: %s %s", summary, summarySuffix)
}

// scoreSentiment fakes sentiment analysis with keyword counting. Confidence
// grows 5 points per keyword hit, capped at 98 (positive) and 95 (negative);
// a tie reports neutral at a fixed 75.
func scoreSentiment(text string) string {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		confidence := min(85+positive*5, 98)
		return fmt.Sprintf("Positive sentiment detected (confidence: %d%%)", confidence)
	case negative > positive:
		confidence := min(80+negative*5, 95)
		return fmt.Sprintf("Negative sentiment detected (confidence: %d%%)", confidence)
	default:
		return "Neutral sentiment detected (confidence: 75%)"
	}
}

// caption fakes image captioning. The caption index is derived from the MD5
// of the raw input, so identical inputs always yield the identical caption.
func caption(input string) string {
	hash := cryptor.Md5String(input)
	idx, _ := strconv.ParseInt(hash[:2], 16, 64)
	return fmt.Sprintf("Caption: %s. %s", captions[idx%int64(len(captions))], captionSuffix)
}

// echo handles unknown model types with a truncated echo of the input.
func echo(input string) string {
	runes := []rune(input)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	return fmt.Sprintf("Processed input: %s...", string(runes))
}
