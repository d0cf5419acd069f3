package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// documentArrays are the top-level fields that must hold arrays.
var documentArrays = []string{"meals", "weekPlans", "helloFreshRecipes", "shoppingLists"}

// profileArrays are the profile fields that must hold arrays.
var profileArrays = []string{"likes", "dislikes", "allergies", "triedFoods"}

// DocumentShapeError checks that data is a JSON object carrying all five
// document fields with the right container kinds, and that the profile
// is itself a well-typed record. It does not check entity contents.
func DocumentShapeError(data []byte) error {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return fail("document", "Document is not a JSON object: %v", err)
	}
	if root == nil {
		return fail("document", "Document is not a JSON object")
	}
	for _, field := range documentArrays {
		if err := requireKind(root, field, '['); err != nil {
			return err
		}
	}
	if err := requireKind(root, "pickyEater", '{'); err != nil {
		return err
	}

	var profile map[string]json.RawMessage
	if err := json.Unmarshal(root["pickyEater"], &profile); err != nil {
		return fail("pickyEater", "pickyEater is not an object: %v", err)
	}
	for _, field := range profileArrays {
		if err := requireKind(profile, field, '['); err != nil {
			return prefixed("pickyEater", err)
		}
	}
	if err := requireKind(profile, "childName", '"'); err != nil {
		return prefixed("pickyEater", err)
	}
	var age float64
	if raw, ok := profile["age"]; !ok || json.Unmarshal(raw, &age) != nil {
		return fail("pickyEater.age", "pickyEater.age must be a number")
	}
	return nil
}

// requireKind checks that obj[field] exists and starts with the given JSON delimiter.
func requireKind(obj map[string]json.RawMessage, field string, open byte) error {
	raw, ok := obj[field]
	if !ok {
		return fail(field, "Missing field %q", field)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != open {
		return fail(field, "Field %q must be %s", field, kindName(open))
	}
	return nil
}

func kindName(open byte) string {
	switch open {
	case '[':
		return "an array"
	case '{':
		return "an object"
	case '"':
		return "a string"
	}
	return fmt.Sprintf("of kind %q", open)
}

func prefixed(parent string, err error) error {
	verr := err.(*Error)
	return fail(parent+"."+verr.Field, "%s: %s", parent, verr.Message)
}
