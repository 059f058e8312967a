// Command server exposes the MorphGNT tag decoder as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?tag=<tag>
//	POST /api/parse/batch      body: {"tags":["..."]}
//	GET  /api/word?line=<corpus line>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"
	morphgnt "github.com/sblgnt/morphgnt"
)

// ---- JSON response types ------------------------------------------------

type parseJSON struct {
	Tag          string `json:"tag"`
	PartOfSpeech string `json:"part_of_speech"`
	Person       string `json:"person,omitempty"`
	TenseForm    string `json:"tense_form,omitempty"`
	Voice        string `json:"voice,omitempty"`
	Mood         string `json:"mood,omitempty"`
	Case         string `json:"case,omitempty"`
	Number       string `json:"number,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Indeclinable bool   `json:"indeclinable,omitempty"`
	Indefinite   bool   `json:"indefinite,omitempty"`
	Description  string `json:"description"`
}

type batchItemJSON struct {
	Tag   string     `json:"tag"`
	Parse *parseJSON `json:"parse,omitempty"`
	Error string     `json:"error,omitempty"`
	Kind  string     `json:"kind,omitempty"`
}

type batchResponse struct {
	Results []batchItemJSON `json:"results"`
}

type wordJSON struct {
	Ref   string    `json:"ref"`
	Tag   string    `json:"tag"`
	Parse parseJSON `json:"parse"`
	Text  string    `json:"text"`
	Form  string    `json:"form"`
	Norm  string    `json:"norm"`
	Lemma string    `json:"lemma"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ---- helpers ------------------------------------------------------------

// orEmpty hides "unknown" attribute values from the JSON output.
func orEmpty(s string) string {
	if s == "unknown" {
		return ""
	}
	return s
}

func toParseJSON(tag string, p morphgnt.Parse) parseJSON {
	return parseJSON{
		Tag:          tag,
		PartOfSpeech: p.POS.String(),
		Person:       orEmpty(p.Person.String()),
		TenseForm:    orEmpty(p.TenseForm.String()),
		Voice:        orEmpty(p.Voice.String()),
		Mood:         orEmpty(p.Mood.String()),
		Case:         orEmpty(p.Case.String()),
		Number:       orEmpty(p.Number.String()),
		Gender:       orEmpty(p.Gender.String()),
		Indeclinable: p.Indeclinable,
		Indefinite:   p.Indefinite,
		Description:  p.String(),
	}
}

// errKind maps a decode error to a stable machine-readable name.
func errKind(err error) string {
	switch {
	case errors.Is(err, morphgnt.ErrIncomplete):
		return "incomplete"
	case errors.Is(err, morphgnt.ErrUnknownPartOfSpeech):
		return "unknown_part_of_speech"
	case errors.Is(err, morphgnt.ErrUnknownPerson):
		return "unknown_person"
	case errors.Is(err, morphgnt.ErrUnknownTenseForm):
		return "unknown_tense_form"
	case errors.Is(err, morphgnt.ErrUnknownVoice):
		return "unknown_voice"
	case errors.Is(err, morphgnt.ErrUnrecognisedValue):
		return "unrecognised_value"
	case errors.Is(err, morphgnt.ErrUnknownCase):
		return "unknown_case"
	case errors.Is(err, morphgnt.ErrUnknownNumber):
		return "unknown_number"
	case errors.Is(err, morphgnt.ErrUnknownGender):
		return "unknown_gender"
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeDecodeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: err.Error(),
		Kind:  errKind(err),
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
		return
	}
	p, err := morphgnt.ParseTag(tag)
	if err != nil {
		writeDecodeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toParseJSON(tag, p))
}

func handleParseBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Tags) == 0 {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'tags' array")
		return
	}

	out := make([]batchItemJSON, 0, len(body.Tags))
	for _, tag := range body.Tags {
		p, err := morphgnt.ParseTag(tag)
		if err != nil {
			out = append(out, batchItemJSON{
				Tag:   tag,
				Error: err.Error(),
				Kind:  errKind(err),
			})
			continue
		}
		pj := toParseJSON(tag, p)
		out = append(out, batchItemJSON{Tag: tag, Parse: &pj})
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: out})
}

func handleWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	line := r.URL.Query().Get("line")
	if line == "" {
		writeError(w, http.StatusBadRequest, "missing 'line' query parameter")
		return
	}
	word, err := morphgnt.ParseLine(line)
	if err != nil {
		writeDecodeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wordJSON{
		Ref:   word.Ref.String(),
		Tag:   word.Tag,
		Parse: toParseJSON(word.Tag, word.Parse),
		Text:  word.Text,
		Form:  word.Form,
		Norm:  word.Norm,
		Lemma: word.Lemma,
	})
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", "morphgnt.yaml", "path to config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := morphgnt.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse/batch", handleParseBatch)
	mux.HandleFunc("/api/parse", handleParse)
	mux.HandleFunc("/api/word", handleWord)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowOrigins,
	}).Handler(mux)

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
