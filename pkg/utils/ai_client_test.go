package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lotrinh/internal/models/request_models"
)

func TestCleanJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fenced json block",
			in:   "```json\n[{\"day\":1}]\n```",
			want: `[{"day":1}]`,
		},
		{
			name: "uppercase fence tag",
			in:   "```JSON\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "leading prose before array",
			in:   "Here is your itinerary:\n[{\"day\":1}]",
			want: `[{"day":1}]`,
		},
		{
			name: "already clean",
			in:   `[{"day":2}]`,
			want: `[{"day":2}]`,
		},
		{
			name: "no json at all",
			in:   "sorry, I cannot help with that",
			want: "sorry, I cannot help with that",
		},
		{
			name: "surrounding whitespace",
			in:   "   \n {\"x\":1} \n ",
			want: `{"x":1}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanJSONResponse(tc.in))
		})
	}
}

func TestNewPlannerClientRejectsUnknownProvider(t *testing.T) {
	client, err := NewPlannerClient("anthropic", "key", "")

	assert.Nil(t, client)
	assert.ErrorContains(t, err, "unsupported provider")
}

func TestNewPlannerClientDefaultsToOpenAIModel(t *testing.T) {
	client, err := NewPlannerClient("openai", "key", "")

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.NoError(t, client.Close())
}

func TestBuildGroupingPromptListsEveryDestination(t *testing.T) {
	pois := []request_models.POISummary{
		{ID: "id-1", Name: "Chợ Đà Lạt", Category: "am-thuc", Address: "Đường Nguyễn Thị Minh Khai"},
		{ID: "id-2", Name: "Hồ Xuân Hương", Category: "tham-quan"},
	}

	prompt := buildGroupingPrompt(pois, 2)

	for _, p := range pois {
		assert.Contains(t, prompt, "ID:"+p.ID)
		assert.Contains(t, prompt, p.Name)
	}
	assert.Contains(t, prompt, "Exactly 2 days")
	assert.Equal(t, 1, strings.Count(prompt, "REQUIREMENTS:"))
}
