/*
Package server exposes generation over http.

	GET /generate?length=16&accept=@isalnum&accept=_-&exclude=0O&count=4
	GET /classes
	GET /health

Each request builds its own rules and generator. The entropy source is opened once by Serve and
shared by all requests behind a lock, so a file source is read forward rather than reopened.
Generation is bounded by a per request timeout on top of the retry budget, and stops when the
context given to Serve is cancelled.

Status codes: 400 for bad parameters or rules, 422 for an alphabet that selects nothing or an exhausted
retry budget, 503 when the entropy source fails or the request times out.
*/
package server
