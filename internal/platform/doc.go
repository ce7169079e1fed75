package platform

// Package platform contains OS integration glue: validating outbound recipe
// links and handing them to the system browser.
