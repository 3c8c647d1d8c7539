package message

import (
	nt "tabula/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// NoticeMsg carries an action notice to the host
type NoticeMsg struct {
	Notice nt.Notice
}

// StatusMsg is a one-line status for the footer
type StatusMsg struct {
	Text string
}

