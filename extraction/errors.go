package extraction

import "errors"

// ErrExtraction шаблон не совпал с текстом или дал неверное число групп.
// Ошибка восстановимая: Parser логирует ее и отбрасывает один атрибут,
// не прерывая обработку пакета.
var ErrExtraction = errors.New("text extraction failed")

// ErrNoParser для атрибута не зарегистрирован признак
var ErrNoParser = errors.New("no parser for feature")
