package module

import "reflect"

// PortsOf finds a T in a module's Ports() without going through the registry.
// Ports() may implement T itself or be a struct (or pointer to one) with an
// exported field that does, e.g. thaidate's Ports{Service, Calendar}.
// Embedded structs are searched too; the first match in field order wins
func PortsOf[T any](m Module) (T, bool) {
	return find[T](m.Ports())
}

func find[T any](p any) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if f.Kind() == reflect.Interface && f.IsNil() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
		if rv.Type().Field(i).Anonymous {
			if v, ok := find[T](f.Interface()); ok {
				return v, true
			}
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for startup wiring; a missing port panics
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic("module: requested port not found on module " + m.Name())
}
