package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clean returns a transport-safe copy of a raw document: the native "_id"
// key is replaced by a string "id" field and every nested identifier value
// is stringified, however deeply it sits in the payload.
func Clean(doc map[string]any) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = Stringify(v)
	}
	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = raw
	}
	return out
}

// Stringify recursively replaces native identifier values with their hex
// string form inside arbitrary payloads (maps, bson documents, arrays).
// Values of any other type pass through untouched.
func Stringify(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case bson.M:
		return Clean(t)
	case map[string]any:
		return Clean(t)
	case bson.A:
		return stringifySlice(t)
	case []any:
		return stringifySlice(t)
	case []Document:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Stringify(e)
		}
		return out
	default:
		return v
	}
}

func stringifySlice(s []any) []any {
	out := make([]any, len(s))
	for i, e := range s {
		out[i] = Stringify(e)
	}
	return out
}
