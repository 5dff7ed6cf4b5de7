package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lingofeed/lingofeed/internal/feed"
	mock_feed "github.com/lingofeed/lingofeed/internal/mocks/feed"
	mock_provider "github.com/lingofeed/lingofeed/internal/mocks/provider"
	mock_resolver "github.com/lingofeed/lingofeed/internal/mocks/resolver"
	"github.com/lingofeed/lingofeed/internal/provider"
	"github.com/lingofeed/lingofeed/internal/resolver"
	"github.com/lingofeed/lingofeed/internal/server"
)

type handlerMocks struct {
	cache     *mock_resolver.MockCacheStore
	source    *mock_resolver.MockSubjectSource
	generator *mock_provider.MockGenerator
	subjects  *mock_feed.MockSubjectRepository
}

func newTestServer(t *testing.T) (*httptest.Server, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		cache:     mock_resolver.NewMockCacheStore(ctrl),
		source:    mock_resolver.NewMockSubjectSource(ctrl),
		generator: mock_provider.NewMockGenerator(ctrl),
		subjects:  mock_feed.NewMockSubjectRepository(ctrl),
	}
	res := resolver.New(m.cache, m.source, m.generator, mock_provider.NewMockTranslator(ctrl))

	mux := http.NewServeMux()
	server.NewHandler(res, m.subjects).Register(mux)
	testServer := httptest.NewServer(mux)
	t.Cleanup(testServer.Close)
	return testServer, m
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	response, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })
	return response
}

func decodeBody(t *testing.T, response *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(response.Body).Decode(out))
}

func TestHandler_ListFacts(t *testing.T) {
	t.Run("returns the page of subjects", func(t *testing.T) {
		testServer, m := newTestServer(t)
		m.subjects.EXPECT().List(gomock.Any(), feed.ListParams{
			Page:       1,
			Limit:      10,
			Categories: []string{"science", "history"},
			Language:   "English",
		}).Return([]feed.Subject{{ID: "f1", SourceText: "Hello world"}}, nil)

		response, err := http.Get(testServer.URL + "/api/facts?page=1&limit=10&categories=science,history&language=English")
		require.NoError(t, err)
		defer func() { _ = response.Body.Close() }()

		require.Equal(t, http.StatusOK, response.StatusCode)
		var subjects []feed.Subject
		decodeBody(t, response, &subjects)
		require.Len(t, subjects, 1)
		assert.Equal(t, "f1", subjects[0].ID)
	})

	t.Run("empty result is an empty array, not null", func(t *testing.T) {
		testServer, m := newTestServer(t)
		m.subjects.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		response, err := http.Get(testServer.URL + "/api/facts")
		require.NoError(t, err)
		defer func() { _ = response.Body.Close() }()

		require.Equal(t, http.StatusOK, response.StatusCode)
		var raw json.RawMessage
		decodeBody(t, response, &raw)
		assert.JSONEq(t, "[]", string(raw))
	})

	t.Run("negative page is a bad request", func(t *testing.T) {
		testServer, _ := newTestServer(t)

		response, err := http.Get(testServer.URL + "/api/facts?page=-1")
		require.NoError(t, err)
		defer func() { _ = response.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func TestHandler_FactContent(t *testing.T) {
	factKey := resolver.ContentKey{
		Kind:           resolver.KindFactContent,
		SubjectID:      "f1",
		TargetLanguage: "Spanish",
		Level:          feed.LevelBeginner,
	}
	requestBody := `{"subjectId": "f1", "language": "Spanish", "level": "Beginner"}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(m handlerMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "cached content is returned",
			body: requestBody,
			setupMock: func(m handlerMocks) {
				m.cache.EXPECT().Get(gomock.Any(), factKey).Return(&resolver.CacheEntry{
					Key:     factKey,
					Payload: json.RawMessage(`{"content":"Hola mundo"}`),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"content":"Hola mundo"}`,
		},
		{
			name:       "missing fields are a bad request",
			body:       `{"subjectId": "f1"}`,
			setupMock:  func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed JSON body is a bad request",
			body:       `{"subjectId": `,
			setupMock:  func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown subject is not found",
			body: requestBody,
			setupMock: func(m handlerMocks) {
				m.cache.EXPECT().Get(gomock.Any(), factKey).Return(nil, nil)
				m.source.EXPECT().FindByID(gomock.Any(), "f1").Return(nil, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "missing credentials read as a configuration problem",
			body: requestBody,
			setupMock: func(m handlerMocks) {
				m.cache.EXPECT().Get(gomock.Any(), factKey).Return(nil, nil)
				m.source.EXPECT().FindByID(gomock.Any(), "f1").
					Return(&feed.Subject{ID: "f1", SourceText: "Hello world"}, nil)
				m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return("", provider.ErrMissingCredentials)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"the service is not configured"}`,
		},
		{
			name: "upstream rejection surfaces as a generic server error",
			body: requestBody,
			setupMock: func(m handlerMocks) {
				m.cache.EXPECT().Get(gomock.Any(), factKey).Return(nil, nil)
				m.source.EXPECT().FindByID(gomock.Any(), "f1").
					Return(&feed.Subject{ID: "f1", SourceText: "Hello world"}, nil)
				m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return("", &provider.UpstreamError{StatusCode: 429, Message: "quota exceeded"})
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"could not load content"}`,
		},
		{
			name: "empty generation surfaces as a generic server error",
			body: requestBody,
			setupMock: func(m handlerMocks) {
				m.cache.EXPECT().Get(gomock.Any(), factKey).Return(nil, nil)
				m.source.EXPECT().FindByID(gomock.Any(), "f1").
					Return(&feed.Subject{ID: "f1", SourceText: "Hello world"}, nil)
				m.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", nil)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"could not load content"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testServer, m := newTestServer(t)
			tt.setupMock(m)

			response := postJSON(t, testServer.URL+"/api/fact-content", tt.body)
			assert.Equal(t, tt.wantStatus, response.StatusCode)
			if tt.wantBody != "" {
				var raw json.RawMessage
				decodeBody(t, response, &raw)
				assert.JSONEq(t, tt.wantBody, string(raw))
			}
		})
	}
}

func TestHandler_ExtendedFact(t *testing.T) {
	testServer, m := newTestServer(t)
	m.source.EXPECT().FindTranslation(gomock.Any(), "f1", "Spanish").Return(nil, nil)

	response := postJSON(t, testServer.URL+"/api/extended-fact",
		`{"subjectId": "f1", "language": "Spanish", "level": "Advanced"}`)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestHandler_WordTranslation_UnsupportedLanguage(t *testing.T) {
	testServer, _ := newTestServer(t)

	response := postJSON(t, testServer.URL+"/api/word-translation",
		`{"word": "sana", "sourceLanguage": "Finnish", "targetLanguage": "English"}`)
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestHandler_WordAnalysis(t *testing.T) {
	analysisKey := resolver.ContentKey{
		Kind:           resolver.KindWordAnalysis,
		Word:           "correr",
		SourceLanguage: "Spanish",
		TargetLanguage: "English",
	}

	t.Run("parsed analysis is returned", func(t *testing.T) {
		testServer, m := newTestServer(t)
		m.cache.EXPECT().Get(gomock.Any(), analysisKey).Return(nil, nil)
		m.generator.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
			Return("```json\n{\"rootWord\": \"correr\", \"meanings\": [{\"translation\": \"to run\"}]}\n```", nil)
		m.cache.EXPECT().Put(gomock.Any(), analysisKey, gomock.Any()).Return(nil)

		response := postJSON(t, testServer.URL+"/api/word-analysis",
			`{"word": "correr", "sourceLanguage": "Spanish", "targetLanguage": "English"}`)
		require.Equal(t, http.StatusOK, response.StatusCode)

		var analysis resolver.WordAnalysis
		decodeBody(t, response, &analysis)
		assert.Equal(t, "correr", analysis.RootWord)
		require.Len(t, analysis.Meanings, 1)
		assert.Equal(t, "to run", analysis.Meanings[0].Translation)
	})

	t.Run("unparseable provider output is a server error", func(t *testing.T) {
		testServer, m := newTestServer(t)
		m.cache.EXPECT().Get(gomock.Any(), analysisKey).Return(nil, nil)
		m.generator.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
			Return("I cannot analyze that word.", nil)

		response := postJSON(t, testServer.URL+"/api/word-analysis",
			`{"word": "correr", "sourceLanguage": "Spanish", "targetLanguage": "English"}`)
		assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	})
}
