package client

import (
	"fmt"

	"github.com/braginxv/netgym/form"
	"github.com/braginxv/netgym/transport"
)

// fieldsOf converts form entries to wire fields. Repeated entries are sent
// once.
func fieldsOf(entries []form.Entry) ([]transport.Field, error) {
	unique := form.Unique(entries...)

	fields := make([]transport.Field, 0, len(unique))
	for _, entry := range unique {
		var f transport.Field
		switch e := entry.(type) {
		case form.String:
			f = transport.Field{
				Name:        e.Name,
				ContentType: e.ContentType,
				Charset:     e.Charset,
				Content:     []byte(e.Content),
			}
		case form.Raw:
			f = transport.Field{
				Name:        e.Name,
				ContentType: e.ContentType,
				Charset:     e.Charset,
				Content:     e.Body.Bytes(),
			}
		case form.File:
			f = transport.Field{
				Name:        e.Name,
				FileName:    e.FileName,
				ContentType: e.ContentType,
				Charset:     e.Charset,
				Content:     e.Body.Bytes(),
			}
		default:
			return nil, fmt.Errorf("unsupported form entry %T", entry)
		}
		fields = append(fields, f)
	}

	return fields, nil
}
