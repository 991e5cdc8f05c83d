package http

// View models for the HTML pages. Money amounts are formatted into display
// strings before they reach the templates so the templates stay logic-free.

// baseView carries the fields the shared layout needs on every page. Username
// is empty on public and pre-login pages, which hides the staff navigation.
type baseView struct {
	Username string
}

type credentialsForm struct {
	Username string
}

type loginView struct {
	baseView
	Error string
	Form  credentialsForm
}

type ownerSetupView struct {
	baseView
	Error string
	Form  credentialsForm
}

// invoiceForm mirrors the raw invoice creation form fields so that a failed
// submission re-renders with everything the user already typed.
type invoiceForm struct {
	InvoiceNumber  string
	ClientName     string
	ClientEmail    string
	ClientAddress  string
	IssueDate      string
	DueDate        string
	Currency       string
	Items          string
	PaymentMethods string
	Notes          string
}

type newInvoiceView struct {
	baseView
	Error string
	Form  invoiceForm
}

type invoiceRow struct {
	ID            int64
	InvoiceNumber string
	ClientName    string
	ClientEmail   string
	Total         string
	CreatedAt     string
}

type dashboardView struct {
	baseView
	Invoices []invoiceRow
}

type createdView struct {
	baseView
	ID            int64
	InvoiceNumber string
	ClientName    string
	IssueDate     string
	DueDate       string
	Total         string
	ClientLink    string
	MailtoLink    string
}

type itemView struct {
	Description string
	Quantity    int64
	UnitPrice   string
	LineTotal   string
}

type publicInvoiceView struct {
	baseView
	InvoiceNumber  string
	ClientName     string
	ClientAddress  string
	IssueDate      string
	DueDate        string
	Items          []itemView
	Total          string
	PaymentMethods string
	Notes          string
	PDFLink        string
}
