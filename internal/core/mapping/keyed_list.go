package mapping

import "fmt"

// KeyedList is a collection field of P whose elements are identified by a key of type K
type KeyedList[P, E any, K comparable] struct {
	name  string
	items func(*P) *[]E
	key   func(*E) *K
}

func NewKeyedList[P, E any, K comparable](name string, items func(*P) *[]E, key func(*E) *K) KeyedList[P, E, K] {
	return KeyedList[P, E, K]{name: name, items: items, key: key}
}

func (l KeyedList[P, E, K]) Name() string {
	return l.name
}

// Entry returns a navigator addressing the element of l whose key equals key.
// When no such element exists, resolving the navigator appends a zero element carrying
// the key. Resolving any number of navigators for one key yields a single element.
func Entry[P, E any, K comparable](n Navigator[P], l KeyedList[P, E, K], key K) Navigator[E] {
	path := fmt.Sprintf("%s[%v]", joinPath(n.path, l.name), key)
	return Navigator[E]{
		path: path,
		resolve: func() (*E, error) {
			parent, err := n.resolve()
			if err != nil {
				return nil, err
			}
			items := l.items(parent)
			if items == nil {
				return nil, &PathError{Path: path, Err: ErrMissingField}
			}
			return upsert(items, l.key, key), nil
		},
	}
}

func upsert[E any, K comparable](items *[]E, keyOf func(*E) *K, key K) *E {
	for i := range *items {
		if *keyOf(&(*items)[i]) == key {
			return &(*items)[i]
		}
	}

	var element E
	*keyOf(&element) = key
	*items = append(*items, element)
	return &(*items)[len(*items)-1]
}
