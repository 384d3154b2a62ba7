package fakes

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Clock is a settable time source.
type Clock struct {
	mu sync.Mutex
	T  time.Time
}

func NewClock(t time.Time) *Clock { return &Clock{T: t} }

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.T
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.T = t
	c.mu.Unlock()
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.T = c.T.Add(d)
	c.mu.Unlock()
}

// Codes returns the queued codes in order and then fails.
type Codes struct {
	mu    sync.Mutex
	Queue []string
}

func NewCodes(codes ...string) *Codes { return &Codes{Queue: codes} }

func (g *Codes) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Queue) == 0 {
		return "", errors.New("fakes: no codes queued")
	}
	c := g.Queue[0]
	g.Queue = g.Queue[1:]
	return c, nil
}

// Hasher prefixes the plain value; Compare checks the prefix form.
type Hasher struct{}

func (Hasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (Hasher) Compare(hash, plain string) bool { return hash == "hashed:"+plain }

type Email struct {
	To, Subject, Body string
}

type SMS struct {
	Phone, Code string
}

// Delivery records outbound messages. Err, when set, is returned from every send.
type Delivery struct {
	mu     sync.Mutex
	Emails []Email
	SMS    []SMS
	Err    error
	last   string
}

func (d *Delivery) SendEmail(_ context.Context, to, subject, body string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	d.Emails = append(d.Emails, Email{To: to, Subject: subject, Body: body})
	d.last = strings.TrimPrefix(body, "Your OTP is ")
	return nil
}

func (d *Delivery) DeliverOutOfBand(_ context.Context, phone, code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	d.SMS = append(d.SMS, SMS{Phone: phone, Code: code})
	d.last = code
	return nil
}

// LastCode returns the code carried by the most recent email or SMS.
func (d *Delivery) LastCode() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}
