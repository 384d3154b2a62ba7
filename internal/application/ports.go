package application

import "context"

// CodeGenerator produces fixed-width numeric one-time codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// PasswordHasher hashes credentials one way.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// Delivery hands a code to the user through the requested channel.
type Delivery interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	DeliverOutOfBand(ctx context.Context, phone, code string) error
}
