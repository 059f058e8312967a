package morphgnt

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Store is a SQLite database of decoded corpus words.
type Store struct {
	DB *sql.DB
}

const storeSchema = `CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	book INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	tag TEXT NOT NULL,
	pos TEXT NOT NULL,
	text TEXT NOT NULL,
	form TEXT NOT NULL,
	norm TEXT NOT NULL,
	lemma TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS words_ref ON words (book, chapter, verse);
CREATE INDEX IF NOT EXISTS words_lemma ON words (lemma);`

// OpenStore opens (creating if necessary) the word database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}

// InsertWords inserts a batch of words in one transaction.
func (s *Store) InsertWords(words []Word) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
        INSERT INTO words (book, chapter, verse, tag, pos, text, form, norm, lemma)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, w := range words {
		_, err := stmt.Exec(
			w.Ref.Book,
			w.Ref.Chapter,
			w.Ref.Verse,
			w.Tag,
			w.Parse.POS.String(),
			w.Text,
			w.Form,
			w.Norm,
			w.Lemma,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// CountByPOS returns the number of stored words per part-of-speech
// name.
func (s *Store) CountByPOS() (map[string]int, error) {
	rows, err := s.DB.Query(`SELECT pos, COUNT(*) FROM words GROUP BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var pos string
		var n int
		if err := rows.Scan(&pos, &n); err != nil {
			return nil, err
		}
		counts[pos] = n
	}
	return counts, rows.Err()
}

// LemmaForms returns the distinct normalized forms stored for a lemma.
func (s *Store) LemmaForms(lemma string) ([]string, error) {
	rows, err := s.DB.Query(
		`SELECT DISTINCT norm FROM words WHERE lemma = ? ORDER BY norm`, lemma)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	return forms, rows.Err()
}
