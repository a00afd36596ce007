package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "analytics",
			objectType:  "summary",
			identifier:  "123",
			paramsKey:   nil,
			expectedKey: "surveyforge:analytics:summary:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "analytics",
			objectType:  "summary",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "surveyforge:analytics:summary:123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "survey",
			objectType:  "detail",
			identifier:  "abc",
			paramsKey:   []string{"param1"},
			expectedKey: "surveyforge:survey:detail:abc:param1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "survey",
			objectType:  "list",
			identifier:  "xyz",
			paramsKey:   []string{"param1", "param2", "param3"},
			expectedKey: "surveyforge:survey:list:xyz:param1_param2_param3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if got != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", got, tt.expectedKey)
			}
		})
	}
}

func TestAnalyticsSummaryKey(t *testing.T) {
	if got := AnalyticsSummaryKey("s1"); got != "surveyforge:analytics:summary:s1" {
		t.Errorf("AnalyticsSummaryKey() = %v", got)
	}
}
