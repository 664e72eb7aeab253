package ai_test

import (
	"errors"
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/ai"
)

func TestExtractJSONBlock(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   string
	}{
		{
			"json fence",
			"Here is the result:\n```json\n{\"angle\": 90}\n```\nDone.",
			`{"angle": 90}`,
		},
		{
			"bare fence",
			"```\n{\"angle\": 0}\n```",
			`{"angle": 0}`,
		},
		{
			"unterminated fence",
			"```json\n{\"angle\": 180}",
			`{"angle": 180}`,
		},
		{
			"no fence, object with prose",
			"The page is rotated. {\"angle\": 270, \"confidence\": 80} Hope that helps.",
			`{"angle": 270, "confidence": 80}`,
		},
		{
			"no fence, array",
			"results: [{\"name\": \"図番\"}]",
			`[{"name": "図番"}]`,
		},
		{
			"bare json",
			`{"summary": "a bracket"}`,
			`{"summary": "a bracket"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ai.ExtractJSONBlock(tc.answer)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("got %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestExtractJSONBlockMalformed(t *testing.T) {
	for _, answer := range []string{
		"I could not read the drawing.",
		"",
		"unbalanced { never closes",
	} {
		_, err := ai.ExtractJSONBlock(answer)
		if err == nil {
			t.Errorf("expected error for %q", answer)
			continue
		}
		var merr *ai.MalformedResponseError
		if !errors.As(err, &merr) {
			t.Errorf("expected MalformedResponseError for %q, got %T", answer, err)
		}
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := ai.RotationSchema()

	if err := ai.ValidateJSONAgainstSchema(schema, []byte(`{"angle": 90, "confidence": 85, "reason": "title block on the left"}`)); err != nil {
		t.Fatalf("valid judgment rejected: %v", err)
	}
	if err := ai.ValidateJSONAgainstSchema(schema, []byte(`{"angle": 45, "confidence": 85, "reason": "x"}`)); err == nil {
		t.Error("angle outside the enum should fail validation")
	}
	if err := ai.ValidateJSONAgainstSchema(schema, []byte(`{"confidence": 85}`)); err == nil {
		t.Error("missing angle should fail validation")
	}
}
