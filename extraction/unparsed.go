package extraction

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// UnparsedWords копилка сырых пар (атрибут, текст), которые не удалось
// разобрать. Отчет используется для ручного расширения таблицы признаков
// и файлов маппингов.
type UnparsedWords struct {
	words map[string]map[string]struct{}
	path  string
}

// NewUnparsedWords создает пустую копилку; path может быть пустым,
// тогда SaveToDisk ничего не делает
func NewUnparsedWords(path string) *UnparsedWords {
	return &UnparsedWords{
		words: make(map[string]map[string]struct{}),
		path:  path,
	}
}

// Add запоминает неразобранный текст для атрибута
func (u *UnparsedWords) Add(key, text string) {
	set, ok := u.words[key]
	if !ok {
		set = make(map[string]struct{})
		u.words[key] = set
	}
	set[text] = struct{}{}
}

// Len возвращает число атрибутов с неразобранными значениями
func (u *UnparsedWords) Len() int {
	return len(u.words)
}

// SaveToDisk пишет отчет в JSON с отсортированными списками значений
func (u *UnparsedWords) SaveToDisk() error {
	if u.path == "" {
		return nil
	}

	report := make(map[string][]string, len(u.words))
	for key, set := range u.words {
		values := make([]string, 0, len(set))
		for value := range set {
			values = append(values, value)
		}
		sort.Strings(values)
		report[key] = values
	}

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal unparsed words: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(u.path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(u.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write unparsed words: %w", err)
	}
	log.Printf("Flushed unparsed words to %s", filepath.Base(u.path))
	return nil
}
