package jisho

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is the flattened form of one dictionary entry.
type Record struct {
	Slug          string   `json:"slug" yaml:"slug"`
	IsCommon      bool     `json:"is_common" yaml:"is_common"`
	JLPTLevel     string   `json:"jlpt_level" yaml:"jlpt_level"`
	WaniKaniLevel string   `json:"wanikani_level" yaml:"wanikani_level"`
	Reading       string   `json:"reading" yaml:"reading"`
	Meanings      []string `json:"meanings" yaml:"meanings"`
	WordTypes     []string `json:"word_types" yaml:"word_types"`
}

// NormalizeJSON decodes a search response body and normalizes it.
func NormalizeJSON(body []byte) ([]Record, error) {
	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: json.Unmarshal > %w", ErrUnexpectedShape, err)
	}
	return Normalize(response)
}

// Normalize maps every entry of the response to a Record, keeping the order of the API.
// A single malformed entry fails the whole response.
func Normalize(response Response) ([]Record, error) {
	if response.Data == nil {
		return nil, fmt.Errorf("%w: response has no data field", ErrUnexpectedShape)
	}

	records := make([]Record, 0, len(response.Data))
	for i, entry := range response.Data {
		record, err := NewRecord(entry)
		if err != nil {
			return nil, fmt.Errorf("data[%d] > %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// NewRecord normalizes a single entry.
func NewRecord(entry Entry) (Record, error) {
	reading, err := extractReading(entry)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Slug:          entry.Slug,
		IsCommon:      entry.IsCommon,
		JLPTLevel:     extractJLPTLevel(entry),
		WaniKaniLevel: extractWaniKaniLevel(entry),
		Reading:       reading,
		Meanings:      extractMeanings(entry),
		WordTypes:     extractWordTypes(entry),
	}, nil
}

func extractJLPTLevel(entry Entry) string {
	if len(entry.JLPT) == 0 {
		return ""
	}
	return strings.ToUpper(strings.Replace(entry.JLPT[0], "jlpt-", "", 1))
}

// The wanikani tag is not case-normalized, unlike the JLPT one.
func extractWaniKaniLevel(entry Entry) string {
	if len(entry.Tags) == 0 {
		return ""
	}
	return strings.Replace(entry.Tags[0], "wanikani", "", 1)
}

func extractReading(entry Entry) (string, error) {
	if len(entry.Japanese) == 0 {
		return "", fmt.Errorf("%w: entry '%s' has no japanese form to read from", ErrUnexpectedShape, entry.Slug)
	}
	return entry.Japanese[0].Reading, nil
}

func extractMeanings(entry Entry) []string {
	var meanings []string
	for _, sense := range entry.Senses {
		for _, definition := range sense.EnglishDefinitions {
			meanings = append(meanings, strings.ToLower(definition))
		}
	}
	return unique(meanings)
}

func extractWordTypes(entry Entry) []string {
	var wordTypes []string
	for _, sense := range entry.Senses {
		for _, partOfSpeech := range sense.PartsOfSpeech {
			wordType := strings.ToLower(partOfSpeech)
			if strings.Contains(wordType, "wikipedia") {
				continue
			}
			wordTypes = append(wordTypes, wordType)
		}
	}
	return unique(wordTypes)
}

// unique drops repeated values and keeps the first occurrence order. It never returns nil.
func unique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
