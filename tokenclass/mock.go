package tokenclass

// MockClassifier мок классификатора для использования в тестах
type MockClassifier struct {
	responses map[string]LabeledSpans
	errors    map[string]error
	callCount int
}

// NewMockClassifier создает новый мок классификатора
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{
		responses: make(map[string]LabeledSpans),
		errors:    make(map[string]error),
	}
}

// SetResponse устанавливает ответ для конкретного текста
func (m *MockClassifier) SetResponse(text string, spans LabeledSpans) {
	m.responses[text] = spans
}

// SetError устанавливает ошибку для конкретного текста
func (m *MockClassifier) SetError(text string, err error) {
	m.errors[text] = err
}

// GetCallCount возвращает количество вызовов
func (m *MockClassifier) GetCallCount() int {
	return m.callCount
}

// Reset сбрасывает счетчик вызовов и установленные ответы
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.responses = make(map[string]LabeledSpans)
	m.errors = make(map[string]error)
}

// ClassifyText реализует интерфейс Classifier
func (m *MockClassifier) ClassifyText(text string) (LabeledSpans, error) {
	m.callCount++

	if err, ok := m.errors[text]; ok {
		return nil, err
	}
	if spans, ok := m.responses[text]; ok {
		return spans, nil
	}

	// Дефолтный ответ: разметка не нашла ни одной сущности
	return LabeledSpans{}, nil
}
