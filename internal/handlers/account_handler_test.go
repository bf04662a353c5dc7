package handlers

import (
	"net/http"
	"testing"

	"privfinos/internal/testutil"
)

func TestAccountCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("POST", "/api/accounts",
			`{"name":"Checking","type":"CHECKING","balance":5000,"currency":"USD"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		payload := data(t, rec)
		if payload["name"] != "Checking" {
			t.Errorf("expected name Checking, got %v", payload["name"])
		}
		if payload["type"] != "CHECKING" {
			t.Errorf("expected type CHECKING, got %v", payload["type"])
		}
		if payload["currency"] != "USD" {
			t.Errorf("expected currency USD, got %v", payload["currency"])
		}
		if payload["isActive"] != true {
			t.Errorf("expected isActive true, got %v", payload["isActive"])
		}
	})

	t.Run("default_currency", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("POST", "/api/accounts", `{"name":"Wallet","type":"CASH"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if payload := data(t, rec); payload["currency"] != "CAD" {
			t.Errorf("expected default currency CAD, got %v", payload["currency"])
		}
	})

	t.Run("bad_type", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("POST", "/api/accounts", `{"name":"X","type":"WALLET"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "VALIDATION_ERROR")
	})

	t.Run("bad_currency", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("POST", "/api/accounts", `{"name":"X","type":"CASH","currency":"ZZZ"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "VALIDATION_ERROR")
	})
}

func TestAccountGetAll(t *testing.T) {
	t.Run("filter_active", func(t *testing.T) {
		app := setupApp(t)
		kept := testutil.CreateTestAccount(t, app.DB)
		closed := testutil.CreateTestAccount(t, app.DB)

		rec := app.request("DELETE", "/api/accounts/"+closed.ID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		rec = app.request("GET", "/api/accounts?isActive=true", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		list := dataList(t, rec)
		if len(list) != 1 {
			t.Fatalf("expected 1 active account, got %d", len(list))
		}
		if row := list[0].(map[string]interface{}); row["id"] != kept.ID {
			t.Errorf("expected account %s, got %v", kept.ID, row["id"])
		}
	})
}

func TestAccountGetByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("GET", "/api/accounts/00000000-0000-0000-0000-000000000000", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "ACCOUNT_NOT_FOUND")
	})

	t.Run("malformed_id", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("GET", "/api/accounts/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "VALIDATION_ERROR")
	})
}

func TestAccountUpdate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		app := setupApp(t)
		created := testutil.CreateTestAccount(t, app.DB)

		rec := app.request("PUT", "/api/accounts/"+created.ID, `{"name":"Renamed","notes":"main account"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		payload := data(t, rec)
		if payload["name"] != "Renamed" {
			t.Errorf("expected name Renamed, got %v", payload["name"])
		}
		if payload["notes"] != "main account" {
			t.Errorf("expected notes set, got %v", payload["notes"])
		}
	})

	t.Run("not_found", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("PUT", "/api/accounts/00000000-0000-0000-0000-000000000000", `{"name":"x"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "ACCOUNT_NOT_FOUND")
	})
}

func TestAccountBalance(t *testing.T) {
	t.Run("single_account", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccountWithBalance(t, app.DB, "5000.00")

		rec := app.request("GET", "/api/accounts/"+account.ID+"/balance", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		payload := data(t, rec)
		if payload["accountId"] != account.ID {
			t.Errorf("expected accountId %s, got %v", account.ID, payload["accountId"])
		}
		if payload["balance"] != float64(5000) {
			t.Errorf("expected balance 5000, got %v", payload["balance"])
		}
		if payload["currency"] != "USD" {
			t.Errorf("expected currency USD, got %v", payload["currency"])
		}
	})

	t.Run("total", func(t *testing.T) {
		app := setupApp(t)
		testutil.CreateTestAccountWithBalance(t, app.DB, "5000.00")
		testutil.CreateTestAccountWithBalance(t, app.DB, "10000.00")
		testutil.CreateTestAccountWithBalance(t, app.DB, "-500.00")
		testutil.CreateTestAccountWithBalance(t, app.DB, "200.00")

		rec := app.request("GET", "/api/accounts/balance/total", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		payload := data(t, rec)
		if payload["total"] != float64(14700) {
			t.Errorf("expected total 14700, got %v", payload["total"])
		}
		if payload["accountCount"] != float64(4) {
			t.Errorf("expected accountCount 4, got %v", payload["accountCount"])
		}
		if payload["currency"] != "USD" {
			t.Errorf("expected currency USD, got %v", payload["currency"])
		}
	})

	t.Run("total_excludes_soft_deleted", func(t *testing.T) {
		app := setupApp(t)
		testutil.CreateTestAccountWithBalance(t, app.DB, "100.00")
		closed := testutil.CreateTestAccountWithBalance(t, app.DB, "900.00")

		rec := app.request("DELETE", "/api/accounts/"+closed.ID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		rec = app.request("GET", "/api/accounts/balance/total", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		payload := data(t, rec)
		if payload["total"] != float64(100) {
			t.Errorf("expected total 100, got %v", payload["total"])
		}
		if payload["accountCount"] != float64(1) {
			t.Errorf("expected accountCount 1, got %v", payload["accountCount"])
		}
	})
}

func TestAccountDelete(t *testing.T) {
	t.Run("soft_delete", func(t *testing.T) {
		app := setupApp(t)
		created := testutil.CreateTestAccount(t, app.DB)

		rec := app.request("DELETE", "/api/accounts/"+created.ID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if payload := data(t, rec); payload["isActive"] != false {
			t.Errorf("expected isActive false, got %v", payload["isActive"])
		}
	})

	t.Run("hard_delete_cascades", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		tx := testutil.CreateTestTransaction(t, app.DB, account.ID, "EXPENSE", "25.00")

		rec := app.request("DELETE", "/api/accounts/"+account.ID+"/hard", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		payload := data(t, rec)
		if payload["message"] != "Account permanently deleted" {
			t.Errorf("unexpected ack message: %v", payload["message"])
		}
		if payload["success"] != true {
			t.Errorf("expected success true in ack, got %v", payload["success"])
		}

		rec = app.request("GET", "/api/transactions/"+tx.ID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for cascaded transaction, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "TRANSACTION_NOT_FOUND")
	})
}
