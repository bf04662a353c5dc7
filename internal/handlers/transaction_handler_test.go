package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"privfinos/internal/models"
	"privfinos/internal/testutil"
)

func TestTransactionCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)

		body := fmt.Sprintf(
			`{"accountId":%q,"type":"EXPENSE","amount":42.5,"description":"Lunch","date":"2026-08-01T12:00:00Z","tags":["food"]}`,
			account.ID)
		rec := app.request("POST", "/api/transactions", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		payload := data(t, rec)
		if payload["description"] != "Lunch" {
			t.Errorf("expected description Lunch, got %v", payload["description"])
		}
		if payload["accountId"] != account.ID {
			t.Errorf("expected accountId %s, got %v", account.ID, payload["accountId"])
		}
		tags, ok := payload["tags"].([]interface{})
		if !ok || len(tags) != 1 || tags[0] != "food" {
			t.Errorf("expected tags [food], got %v", payload["tags"])
		}
	})

	t.Run("missing_amount", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)

		body := fmt.Sprintf(
			`{"accountId":%q,"type":"EXPENSE","description":"Lunch","date":"2026-08-01T12:00:00Z"}`,
			account.ID)
		rec := app.request("POST", "/api/transactions", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "VALIDATION_ERROR")
	})

	t.Run("nonexistent_account", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("POST", "/api/transactions",
			`{"accountId":"00000000-0000-0000-0000-000000000000","type":"EXPENSE","amount":1,"description":"x","date":"2026-08-01T12:00:00Z"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, rec, "ACCOUNT_NOT_FOUND")
	})

	t.Run("transfer_to_same_account", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)

		body := fmt.Sprintf(
			`{"accountId":%q,"type":"TRANSFER","amount":10,"description":"Loop","date":"2026-08-01T12:00:00Z","toAccountId":%q}`,
			account.ID, account.ID)
		rec := app.request("POST", "/api/transactions", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, rec, "SAME_ACCOUNT_TRANSFER")
	})
}

func TestTransactionGetAll(t *testing.T) {
	t.Run("filter_by_account", func(t *testing.T) {
		app := setupApp(t)
		acct1 := testutil.CreateTestAccount(t, app.DB)
		acct2 := testutil.CreateTestAccount(t, app.DB)
		testutil.CreateTestTransaction(t, app.DB, acct1.ID, models.TransactionTypeExpense, "10.00")
		testutil.CreateTestTransaction(t, app.DB, acct2.ID, models.TransactionTypeExpense, "20.00")

		rec := app.request("GET", "/api/transactions?accountId="+acct1.ID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := len(dataList(t, rec)); got != 1 {
			t.Errorf("expected 1 transaction, got %d", got)
		}
	})

	t.Run("filter_by_amount_range", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "5.00")
		testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "15.00")
		testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "30.00")

		rec := app.request("GET", "/api/transactions?minAmount=10&maxAmount=20", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := len(dataList(t, rec)); got != 1 {
			t.Errorf("expected 1 transaction in range, got %d", got)
		}
	})

	t.Run("invalid_start_date", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("GET", "/api/transactions?startDate=yesterday", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "VALIDATION_ERROR")
	})

	t.Run("limit_above_max", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("GET", "/api/transactions?limit=500", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "VALIDATION_ERROR")
	})

	t.Run("pagination", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		for i := 0; i < 5; i++ {
			testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "1.00")
		}

		rec := app.request("GET", "/api/transactions?limit=2&offset=4", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := len(dataList(t, rec)); got != 1 {
			t.Errorf("expected 1 transaction on last page, got %d", got)
		}
	})
}

func TestTransactionGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		created := testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeIncome, "100.00")

		rec := app.request("GET", "/api/transactions/"+created.ID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if payload := data(t, rec); payload["id"] != created.ID {
			t.Errorf("expected id %s, got %v", created.ID, payload["id"])
		}
	})

	t.Run("not_found", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("GET", "/api/transactions/00000000-0000-0000-0000-000000000000", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionUpdate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		created := testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "50.00")

		rec := app.request("PUT", "/api/transactions/"+created.ID, `{"description":"Adjusted","isReconciled":true}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		payload := data(t, rec)
		if payload["description"] != "Adjusted" {
			t.Errorf("expected description Adjusted, got %v", payload["description"])
		}
		if payload["isReconciled"] != true {
			t.Errorf("expected isReconciled true, got %v", payload["isReconciled"])
		}
	})

	t.Run("nonexistent_category", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		created := testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "50.00")

		rec := app.request("PUT", "/api/transactions/"+created.ID,
			`{"categoryId":"00000000-0000-0000-0000-000000000000"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, rec, "CATEGORY_NOT_FOUND")
	})

	t.Run("null_clears_category", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		category := testutil.CreateTestCategory(t, app.DB, models.CategoryTypeExpense)
		created := testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "50.00")

		rec := app.request("PUT", "/api/transactions/"+created.ID,
			fmt.Sprintf(`{"categoryId":%q}`, category.ID))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = app.request("PUT", "/api/transactions/"+created.ID, `{"categoryId":null}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if payload := data(t, rec); payload["categoryId"] != nil {
			t.Errorf("expected categoryId null, got %v", payload["categoryId"])
		}

		rec = app.request("GET", "/api/transactions/"+created.ID, "")
		if payload := data(t, rec); payload["categoryId"] != nil {
			t.Errorf("expected categoryId null after reload, got %v", payload["categoryId"])
		}
	})

	t.Run("not_found", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("PUT", "/api/transactions/00000000-0000-0000-0000-000000000000", `{"description":"x"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionDelete(t *testing.T) {
	t.Run("removes_row", func(t *testing.T) {
		app := setupApp(t)
		account := testutil.CreateTestAccount(t, app.DB)
		created := testutil.CreateTestTransaction(t, app.DB, account.ID, models.TransactionTypeExpense, "50.00")

		rec := app.request("DELETE", "/api/transactions/"+created.ID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		rec = app.request("GET", "/api/transactions/"+created.ID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", rec.Code)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		app := setupApp(t)

		rec := app.request("DELETE", "/api/transactions/00000000-0000-0000-0000-000000000000", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "TRANSACTION_NOT_FOUND")
	})
}
