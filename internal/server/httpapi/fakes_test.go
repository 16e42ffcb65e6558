package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/auth"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/dmitrijs2005/tuchka/internal/server/services"
	"github.com/stretchr/testify/require"
)

var (
	testSecret   = []byte("0123456789abcdef0123456789abcdef")
	testIssuer   = "tuchka"
	testAudience = "tuchka-clients"
)

type fakeRegistrar struct {
	err   error
	calls []string
}

func (f *fakeRegistrar) Register(_ context.Context, userName, _, _ string) error {
	f.calls = append(f.calls, "user:"+userName)
	return f.err
}

func (f *fakeRegistrar) RegisterAdmin(_ context.Context, userName, _, _ string) error {
	f.calls = append(f.calls, "admin:"+userName)
	return f.err
}

type fakeAuthenticator struct {
	session *services.Session
	err     error
}

func (f *fakeAuthenticator) Login(context.Context, string, string) (*services.Session, error) {
	return f.session, f.err
}

type fakePasswords struct {
	err   error
	token string
	last  []string
}

func (f *fakePasswords) ChangePassword(_ context.Context, userName, current, newPassword, confirm string) error {
	f.last = []string{"change", userName, current, newPassword, confirm}
	return f.err
}

func (f *fakePasswords) AdminResetPassword(_ context.Context, userName, newPassword, confirm string) error {
	f.last = []string{"admin-reset", userName, newPassword, confirm}
	return f.err
}

func (f *fakePasswords) IssueResetToken(_ context.Context, userName string) (string, error) {
	f.last = []string{"issue", userName}
	return f.token, f.err
}

func (f *fakePasswords) ResetPassword(_ context.Context, userName, token, newPassword, confirm string) error {
	f.last = []string{"reset", userName, token, newPassword, confirm}
	return f.err
}

type fakeDocuments struct {
	docs    map[string]*models.Document
	content map[string][]byte
	owners  map[string]string
	err     error

	uploaded []services.Upload
	bodies   [][]byte
}

func newFakeDocuments() *fakeDocuments {
	return &fakeDocuments{
		docs:    map[string]*models.Document{},
		content: map[string][]byte{},
		owners:  map[string]string{},
	}
}

func (f *fakeDocuments) add(owner string, d *models.Document, body []byte) {
	f.docs[d.ID] = d
	f.owners[d.ID] = owner
	f.content[d.ID] = body
}

func (f *fakeDocuments) Upload(_ context.Context, _ string, files []services.Upload) (*services.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := &services.UploadResult{}
	for i, u := range files {
		b, err := io.ReadAll(u.Body)
		if err != nil {
			return nil, err
		}
		f.uploaded = append(f.uploaded, u)
		f.bodies = append(f.bodies, b)
		res.Count++
		res.Size += u.Size
		res.IDs = append(res.IDs, "doc-"+string(rune('a'+i)))
	}
	return res, nil
}

func (f *fakeDocuments) List(_ context.Context, userName string) ([]*models.Document, error) {
	var out []*models.Document
	for id, d := range f.docs {
		if f.owners[id] == userName {
			out = append(out, d)
		}
	}
	return out, f.err
}

func (f *fakeDocuments) ListAll(context.Context) ([]*models.Document, error) {
	var out []*models.Document
	for _, d := range f.docs {
		out = append(out, d)
	}
	return out, f.err
}

func (f *fakeDocuments) Get(_ context.Context, userName, id string) (*models.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if f.owners[id] != userName {
		return nil, common.ErrForbidden
	}
	return d, nil
}

func (f *fakeDocuments) Open(ctx context.Context, userName, id string) (*models.Document, io.ReadCloser, error) {
	d, err := f.Get(ctx, userName, id)
	if err != nil {
		return nil, nil, err
	}
	return d, io.NopCloser(bytes.NewReader(f.content[id])), nil
}

func (f *fakeDocuments) Rename(ctx context.Context, userName, id, title string, version int64) (*models.Document, error) {
	d, err := f.Get(ctx, userName, id)
	if err != nil {
		return nil, err
	}
	if d.Version != version {
		return nil, common.ErrVersionConflict
	}
	d.Title = title
	d.Version++
	return d, nil
}

func (f *fakeDocuments) Delete(ctx context.Context, userName, id string) error {
	if _, err := f.Get(ctx, userName, id); err != nil {
		return err
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeDocuments) AdminDelete(_ context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.docs, id)
	return nil
}

type fixture struct {
	registrar *fakeRegistrar
	authn     *fakeAuthenticator
	passwords *fakePasswords
	documents *fakeDocuments
	handler   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		registrar: &fakeRegistrar{},
		authn:     &fakeAuthenticator{},
		passwords: &fakePasswords{},
		documents: newFakeDocuments(),
	}
	srv, err := New(Deps{
		Logger:         logging.Nop(),
		Verifier:       auth.NewVerifier(testSecret, testIssuer, testAudience),
		Registration:   f.registrar,
		Authentication: f.authn,
		Passwords:      f.passwords,
		Documents:      f.documents,
	})
	require.NoError(t, err)
	f.handler = srv.Handler()
	return f
}

func tokenFor(t *testing.T, name string, roles ...string) string {
	t.Helper()
	claims := []auth.Claim{{Kind: auth.ClaimName, Value: name}, {Kind: auth.ClaimTokenID, Value: "t-" + name}}
	for _, r := range roles {
		claims = append(claims, auth.Claim{Kind: auth.ClaimRole, Value: r})
	}
	now := time.Now()
	tok, err := auth.Sign(claims, testSecret, testIssuer, testAudience, now, now.Add(time.Hour))
	require.NoError(t, err)
	return tok
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", common.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
