package echoapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edlane/campusdir/core/account"
)

func Test_accountApi_login(t *testing.T) {
	app := initApp(t)

	createAccount(t, app.acctRepo, "jane", "jane@test.cd", "LePassword007", false, true)
	createAccount(t, app.acctRepo, "sleeper", "sleeper@test.cd", "LePassword007", false, false)

	loginBody := func(uname, pwd string) []byte {
		return marchallObj(t, LoginRequest{Username: uname, Password: pwd})
	}

	tests := []httpTest{
		{name: "Login with username", body: loginBody("jane", "LePassword007"), wantCode: http.StatusOK},
		{name: "Login with email", body: loginBody("jane@test.cd", "LePassword007"), wantCode: http.StatusOK},
		{name: "Username is cleaned", body: loginBody("  JANE ", "LePassword007"), wantCode: http.StatusOK},
		{
			name: "Wrong password", body: loginBody("jane", "LeWrongPassword"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "Unknown account", body: loginBody("nobody", "LePassword007"),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name: "Deactivated account", body: loginBody("sleeper", "LePassword007"),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "account deactivated"}),
		},
		{
			name: "Missing fields", body: marchallObj(t, LoginRequest{}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"username": "this field is required",
				"password": "this field is required",
			}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/accounts/login"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshalling LoginResponse: %v", err)
				}
				if resp.Token == "" {
					t.Error("login returned an empty token")
				}
			}
		})
	}

	t.Run("Login updates lastLogin", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/accounts/login", loginBody("jane", "LePassword007"))
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("login code = %v", rec.Code)
		}
		acct, err := app.acctRepo.GetAccount(context.Background(), account.GetFilter{Username: "jane"})
		if err != nil {
			t.Fatalf("GetAccount() failed: %v", err)
		}
		if acct.LastLogin.IsZero() {
			t.Error("lastLogin not set")
		}
	})
}

func Test_accountApi_providerHook(t *testing.T) {
	app := initApp(t)

	sign := func(body []byte) string {
		mac := hmac.New(sha256.New, []byte(app.conf.ProviderWebhookSecret))
		mac.Write(body)
		return hex.EncodeToString(mac.Sum(nil))
	}
	hookRequest := func(body []byte, signature string) (*http.Request, *httptest.ResponseRecorder) {
		req, rec := newRequest(http.MethodPost, "/v1/accounts/provider-hook", body)
		if signature != "" {
			req.Header.Set(signatureHeader, signature)
		}
		return req, rec
	}

	payload := marchallObj(t, account.ProviderAccount{
		ProviderID: "auth0|abc123",
		Name:       "Jane Doe",
		Username:   "JaneDoe",
		Email:      "Jane@Test.cd",
	})

	t.Run("Valid signature syncs the account", func(t *testing.T) {
		req, rec := hookRequest(payload, sign(payload))
		app.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}

		acct, err := app.acctRepo.GetAccount(context.Background(), account.GetFilter{ProviderID: "auth0|abc123"})
		if err != nil {
			t.Fatalf("GetAccount() failed: %v", err)
		}
		if acct.Username != "janedoe" || acct.Email != "jane@test.cd" {
			t.Errorf("identity not cleaned: %q / %q", acct.Username, acct.Email)
		}
		if !acct.Active() || acct.IsAdmin {
			t.Errorf("synced account flags: active=%v admin=%v", acct.Active(), acct.IsAdmin)
		}
	})

	t.Run("Missing signature", func(t *testing.T) {
		req, rec := hookRequest(payload, "")
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "invalid signature"}),
		}, rec)
	})

	t.Run("Bad signature", func(t *testing.T) {
		req, rec := hookRequest(payload, "deadbeef")
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "invalid signature"}),
		}, rec)
	})

	t.Run("Malformed payload", func(t *testing.T) {
		body := []byte("{not json")
		req, rec := hookRequest(body, sign(body))
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "malformed payload"}),
		}, rec)
	})

	t.Run("Invalid payload", func(t *testing.T) {
		body := marchallObj(t, account.ProviderAccount{ProviderID: "auth0|xyz"})
		req, rec := hookRequest(body, sign(body))
		app.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"username": "this field is required",
				"email":    "this field is required",
			}),
		}, rec)
	})
}

func Test_accountApi_refreshToken(t *testing.T) {
	app := initApp(t)

	jane := createAccount(t, app.acctRepo, "jane", "jane@test.cd", "LePassword007", false, true)
	sleeper := createAccount(t, app.acctRepo, "sleeper", "sleeper@test.cd", "LePassword007", false, false)

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "Refresh", token: getToken(t, jane), wantCode: http.StatusOK},
		{
			name: "Deactivated account", token: getToken(t, sleeper),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "account deactivated"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/accounts/token-refresh"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshalling LoginResponse: %v", err)
				}
				if resp.Token == "" {
					t.Error("refresh returned an empty token")
				}
			}
		})
	}
}
