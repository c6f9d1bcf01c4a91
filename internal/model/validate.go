package model

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Collection names, matching the embedded schema files.
const (
	CollectionProfile    = "profile"
	CollectionProjects   = "projects"
	CollectionExperience = "experience"
	CollectionEducation  = "education"
	CollectionSkills     = "skills"
	CollectionLanguages  = "languages"
)

var (
	schemasOnce sync.Once
	schemas     map[string]*gojsonschema.Schema
	schemasErr  error
)

func loadSchemas() {
	schemas = map[string]*gojsonschema.Schema{}
	for _, name := range []string{
		CollectionProfile, CollectionProjects, CollectionExperience,
		CollectionEducation, CollectionSkills, CollectionLanguages,
	} {
		raw, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
		if err != nil {
			schemasErr = err
			return
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			schemasErr = fmt.Errorf("compile %s schema: %w", name, err)
			return
		}
		schemas[name] = s
	}
}

// Validate checks a raw JSON payload against the schema of collection.
func Validate(collection string, raw []byte) error {
	schemasOnce.Do(loadSchemas)
	if schemasErr != nil {
		return schemasErr
	}
	s, ok := schemas[collection]
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s schema validation failed: %s", collection, strings.Join(msgs, "; "))
}
