package i18n

import "golang.org/x/text/language"

// Message keys used by handlers and forms.
const (
	KeyAmountPositive       = "error.amount_positive"
	KeyCurrencyRequired     = "error.currency_required"
	KeySelectSourceAccount  = "error.select_source_account"
	KeyReceiverNumeric      = "error.receiver_numeric"
	KeyDescriptionRequired  = "error.description_required"
	KeySameAccounts         = "error.same_accounts"
	KeySameCurrency         = "error.same_currency"
	KeyAccountNotFound      = "error.account_not_found"
	KeyPasswordMinLength    = "error.password_min_length"
	KeyUsernameRequired     = "error.username_required"
	KeyTokenMissing         = "error.token_missing"
	KeySessionExpired       = "error.session_expired"
	KeyOrderIDMissing       = "error.order_id_missing"
	KeyLoginFailed          = "error.login_failed"
	KeyAccountCreated       = "flash.account_created"
	KeyTransferDone         = "flash.transfer_done"
	KeyProfileUpdated       = "flash.profile_updated"
	KeyProfileDeleted       = "flash.profile_deleted"
	KeyRegistered           = "flash.registered"
	KeyAdminAccountDeleted  = "flash.admin_account_deleted"
	KeyAdminTransactionGone = "flash.admin_transaction_deleted"
	KeyLoggedOut            = "flash.logged_out"
)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		KeyAmountPositive:       "Enter a positive amount.",
		KeyCurrencyRequired:     "Please select a currency.",
		KeySelectSourceAccount:  "Please select the account to debit.",
		KeyReceiverNumeric:      "The receiver account id must be a positive number.",
		KeyDescriptionRequired:  "A description is required.",
		KeySameAccounts:         "Source and destination accounts must differ.",
		KeySameCurrency:         "Source and destination accounts must hold different currencies.",
		KeyAccountNotFound:      "Selected account not found.",
		KeyPasswordMinLength:    "The password must be at least 6 characters long.",
		KeyUsernameRequired:     "A username is required.",
		KeyTokenMissing:         "The server did not return a session token.",
		KeySessionExpired:       "Your session has expired. Please log in again.",
		KeyOrderIDMissing:       "No order id was provided.",
		KeyLoginFailed:          "Login failed. Check your username and password.",
		KeyAccountCreated:       "Account created.",
		KeyTransferDone:         "Transfer completed.",
		KeyProfileUpdated:       "Profile updated.",
		KeyProfileDeleted:       "Your profile has been deleted.",
		KeyRegistered:           "Registration successful. You can log in now.",
		KeyAdminAccountDeleted:  "Account deleted.",
		KeyAdminTransactionGone: "Transaction deleted.",
		KeyLoggedOut:            "You have been logged out.",
	},
	language.Polish: {
		KeyAmountPositive:       "Podaj dodatnią kwotę.",
		KeyCurrencyRequired:     "Wybierz walutę.",
		KeySelectSourceAccount:  "Wybierz konto do obciążenia.",
		KeyReceiverNumeric:      "Identyfikator konta odbiorcy musi być liczbą dodatnią.",
		KeyDescriptionRequired:  "Opis jest wymagany.",
		KeySameAccounts:         "Konto źródłowe i docelowe muszą się różnić.",
		KeySameCurrency:         "Konta muszą być prowadzone w różnych walutach.",
		KeyAccountNotFound:      "Nie znaleziono wybranego konta.",
		KeyPasswordMinLength:    "Hasło musi mieć co najmniej 6 znaków.",
		KeyUsernameRequired:     "Nazwa użytkownika jest wymagana.",
		KeyTokenMissing:         "Serwer nie zwrócił tokenu sesji.",
		KeySessionExpired:       "Twoja sesja wygasła. Zaloguj się ponownie.",
		KeyOrderIDMissing:       "Brak identyfikatora zamówienia.",
		KeyLoginFailed:          "Logowanie nie powiodło się. Sprawdź dane.",
		KeyAccountCreated:       "Konto zostało utworzone.",
		KeyTransferDone:         "Przelew wykonany.",
		KeyProfileUpdated:       "Profil zaktualizowany.",
		KeyProfileDeleted:       "Twój profil został usunięty.",
		KeyRegistered:           "Rejestracja zakończona. Możesz się zalogować.",
		KeyAdminAccountDeleted:  "Konto usunięte.",
		KeyAdminTransactionGone: "Transakcja usunięta.",
		KeyLoggedOut:            "Wylogowano.",
	},
}
