// https://jisho.org/api/v1/search/words
package jisho

import (
	"encoding/json"
	"fmt"
)

type Response struct {
	Meta Meta    `json:"meta"`
	Data []Entry `json:"data"`
}

type Meta struct {
	Status int `json:"status"`
}

type Entry struct {
	Slug        string      `json:"slug"`
	IsCommon    bool        `json:"is_common"`
	Tags        []string    `json:"tags"`
	JLPT        []string    `json:"jlpt"`
	Japanese    []Japanese  `json:"japanese"`
	Senses      []Sense     `json:"senses"`
	Attribution Attribution `json:"attribution"`
}

type Japanese struct {
	Word    string `json:"word,omitempty"`
	Reading string `json:"reading,omitempty"`
}

type Sense struct {
	EnglishDefinitions []string `json:"english_definitions"`
	PartsOfSpeech      []string `json:"parts_of_speech"`
	Links              []Link   `json:"links"`
	Tags               []string `json:"tags"`
	Restrictions       []string `json:"restrictions"`
	SeeAlso            []string `json:"see_also"`
	Antonyms           []string `json:"antonyms"`
	Info               []string `json:"info"`
}

type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type Attribution struct {
	JMdict   bool    `json:"jmdict"`
	JMnedict bool    `json:"jmnedict"`
	DBpedia  DBpedia `json:"dbpedia"`
}

// DBpedia holds the source URL of a DBpedia-derived entry, or "" when the entry has none.
type DBpedia string

func (d *DBpedia) UnmarshalJSON(data []byte) error {
	// dbpedia is either false or a URL string
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		*d = DBpedia(s)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*d = ""
	return nil
}
