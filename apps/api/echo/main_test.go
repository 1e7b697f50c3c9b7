package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/account"
	"github.com/edlane/campusdir/core/catalog"
	"github.com/edlane/campusdir/core/college"
	"github.com/edlane/campusdir/core/enquiry"
	"github.com/edlane/campusdir/core/home"
	emailsvc "github.com/edlane/campusdir/services/email"
	dummydb "github.com/edlane/campusdir/storage/database/dummy"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testLogger struct{}

func (testLogger) Enable(enabled bool)                   {}
func (testLogger) Debug(msg string, args ...interface{}) {}
func (testLogger) Info(msg string, args ...interface{})  {}
func (testLogger) Warn(msg string, args ...interface{})  {}
func (testLogger) Error(msg string, args ...interface{}) {}
func (testLogger) Fatal(msg string, args ...interface{}) {}

func testConfig() *core.Config {
	conf := new(core.Config)
	conf.TestMode = true
	conf.Env = "TEST"
	conf.AppName = "Campusdir"
	conf.SecretKey = "poq5-w3lp)x0c&2m$+a7=ul&fqh!v2(r!d)#*s2(#gy5j^$dqf"
	conf.FrontendBaseURL = "http://localhost:3000"
	conf.DefaultFromEmail = mail.Address{Name: conf.AppName, Address: "noreply@test.cd"}
	conf.EnquiryInbox = mail.Address{Name: "Enquiries", Address: "enquiries@test.cd"}
	conf.ProviderWebhookSecret = "hook-secret"
	conf.Server.JWTExpirationDelta = time.Hour
	conf.Server.JWTRefreshExpirationDelta = 4 * time.Hour
	conf.Catalog.CacheTTL = time.Hour
	return conf
}

type testApp struct {
	server   Server
	db       *dummydb.DB
	conf     *core.Config
	acctRepo account.Repository
}

func initApp(t *testing.T) *testApp {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("initApp() failed: %v", err)
	}
	conf := testConfig()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	acctRepo := dummydb.NewAccountRepository(db)
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	server := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     testLogger{},
		CatalogSvc: catalog.NewService(dummydb.NewCatalogRepository(db), conf),
		CollegeSvc: college.NewService(dummydb.NewCollegeRepository(db)),
		HomeSvc:    home.NewService(dummydb.NewHomeRepository(db)),
		AccountSvc: account.NewService(acctRepo),
		EnquirySvc: enquiry.NewService(dummydb.NewEnquiryRepository(db), mailSvc, conf),
		Validate:   validate,
		Translator: translator,
	})
	return &testApp{server: server, db: db, conf: conf, acctRepo: acctRepo}
}

func createAccount(t *testing.T, repo account.Repository, uname, email, pwd string, isAdmin, isActive bool) account.Account {
	t.Helper()

	now := time.Now().UTC()
	acct := account.Account{
		ID:        uuid.New().String(),
		Username:  uname,
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	acct.SetActive(isActive)
	if pwd != "" {
		if err := acct.SetPassword(pwd); err != nil {
			t.Fatalf("createAccount() failed: %v", err)
		}
	}
	acct, err := repo.CreateAccount(context.Background(), acct)
	if err != nil {
		t.Fatalf("createAccount() failed: %v", err)
	}
	return acct
}

func getToken(t *testing.T, acct account.Account) string {
	token, err := GenerateToken(GetAccountClaims(acct))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		// handlers serve empty lists as [], never null
		objs = make([]interface{}, 0)
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if l1, ok := j1.([]interface{}); ok {
		if l2, ok := j2.([]interface{}); ok {
			return assert.ElementsMatch(t, l1, l2), nil
		}
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// shared fixtures

func seedVocabulary(db *dummydb.DB) []catalog.CourseLookup {
	states := []catalog.State{
		{ID: 1, Name: "Karnataka", Cities: []catalog.City{{ID: 11, Name: "Bengaluru"}, {ID: 12, Name: "Mysuru"}}},
		{ID: 2, Name: "Maharashtra", Cities: []catalog.City{{ID: 21, Name: "Mumbai"}}},
	}
	lookups := []catalog.CourseLookup{
		{ID: 1, Name: "B%Tech_CSE", CourseCode: "BTECH", CategoryCode: "ENGINEERING", TypeCode: "UG"},
		{ID: 2, Name: "M%Tech_CSE", CourseCode: "MTECH", CategoryCode: "ENGINEERING", TypeCode: "PG"},
		{ID: 3, Name: "MBBS", CourseCode: "MBBS", CategoryCode: "MEDICAL", TypeCode: "UG"},
	}
	db.SeedCatalog(states, []string{"COLLEGE", "UNIVERSITY"}, []string{"GOVERNMENT", "PRIVATE"}, lookups)
	return lookups
}
