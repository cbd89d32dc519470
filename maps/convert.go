package maps

import "fmt"

// Converter decodes one grid character into an element of type T.
// It returns an error wrapping ErrConversion when r has no mapping.
type Converter[T any] interface {
	Convert(r rune) (T, error)
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc[T any] func(r rune) (T, error)

// Convert calls f(r).
func (f ConverterFunc[T]) Convert(r rune) (T, error) {
	return f(r)
}

// Digits decodes '0'…'9' to 0…9 and rejects everything else.
var Digits Converter[int] = ConverterFunc[int](func(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q is not a decimal digit", ErrConversion, r)
	}
	return int(r - '0'), nil
})

// Runes keeps every character as is.
var Runes Converter[rune] = ConverterFunc[rune](func(r rune) (rune, error) {
	return r, nil
})
