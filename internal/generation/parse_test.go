package generation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"socialcopilot/internal/common"
)

func TestParseGeneratedContent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *common.GeneratedContent
		wantErr bool
	}{
		{
			name: "well formed",
			raw:  `{"hook":"H","body":"B","cta":"C","tip":"T","hashtags":["go","dev"]}`,
			want: &common.GeneratedContent{Hook: "H", Body: "B", CTA: "C", Tip: "T", Hashtags: []string{"go", "dev"}},
		},
		{
			name: "fenced json block",
			raw:  "```json\n{\"hook\":\"H\",\"body\":\"B\",\"cta\":\"C\",\"tip\":\"\",\"hashtags\":[]}\n```",
			want: &common.GeneratedContent{Hook: "H", Body: "B", CTA: "C", Hashtags: []string{}},
		},
		{
			name: "plain fence without language tag",
			raw:  "```\n{\"hook\":\"H\",\"body\":\"B\",\"cta\":\"C\"}\n```",
			want: &common.GeneratedContent{Hook: "H", Body: "B", CTA: "C", Hashtags: []string{}},
		},
		{
			name: "missing hashtags repaired to empty list",
			raw:  `{"hook":"H","body":"B","cta":"C","tip":"T"}`,
			want: &common.GeneratedContent{Hook: "H", Body: "B", CTA: "C", Tip: "T", Hashtags: []string{}},
		},
		{
			name: "malformed hashtags repaired to empty list",
			raw:  `{"hook":"H","body":"B","cta":"C","hashtags":"go dev"}`,
			want: &common.GeneratedContent{Hook: "H", Body: "B", CTA: "C", Hashtags: []string{}},
		},
		{
			name: "leading hash characters stripped",
			raw:  `{"hook":"H","body":"B","cta":"C","hashtags":["#go","#dev","  "]}`,
			want: &common.GeneratedContent{Hook: "H", Body: "B", CTA: "C", Hashtags: []string{"go", "dev"}},
		},
		{
			name:    "not json at all",
			raw:     "Claro! Aqui está o seu post:",
			wantErr: true,
		},
		{
			name:    "missing hook",
			raw:     `{"body":"B","cta":"C"}`,
			wantErr: true,
		},
		{
			name:    "blank body",
			raw:     `{"hook":"H","body":"   ","cta":"C"}`,
			wantErr: true,
		},
		{
			name:    "missing cta",
			raw:     `{"hook":"H","body":"B"}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseGeneratedContent(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrGenerationParse)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
