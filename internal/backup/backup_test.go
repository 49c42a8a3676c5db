package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dvrst/weekender/internal/model"
)

type fakeS3 struct {
	objects map[string][]byte
	puts    int
	failPut bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts++
	if f.failPut {
		return nil, context.DeadlineExceeded
	}
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*input.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*input.Key]
	if !ok {
		return nil, context.DeadlineExceeded
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

type fakeSnapshotter struct {
	state model.State
}

func (f *fakeSnapshotter) ExportState() model.State { return f.state }

func testManager(t *testing.T, client s3Client) (*Manager, *fakeSnapshotter) {
	t.Helper()
	snap := &fakeSnapshotter{state: model.DefaultState()}
	snap.state.CurrentThreadID = "alex"
	m := NewManager(Config{
		S3:         S3Config{Bucket: "backups", AccessKey: "k", SecretKey: "s", Region: "auto"},
		Passphrase: "pw",
	}, snap, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.client = client
	return m, snap
}

func TestRunNowUploadsEncryptedSnapshot(t *testing.T) {
	fake := newFakeS3()
	m, snap := testManager(t, fake)

	key, err := m.RunNow(context.Background())
	if err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	sealed, ok := fake.objects[key]
	if !ok {
		t.Fatalf("object %q not uploaded", key)
	}

	plaintext, err := Decrypt(sealed, "pw")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	var got model.State
	if err := json.Unmarshal(plaintext, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.CurrentThreadID != snap.state.CurrentThreadID {
		t.Errorf("CurrentThreadID = %q, want %q", got.CurrentThreadID, snap.state.CurrentThreadID)
	}

	status := m.Status()
	if status.State != StateIdle {
		t.Errorf("state = %q, want %q", status.State, StateIdle)
	}
	if status.LastBackup == nil {
		t.Error("LastBackup not recorded")
	}
}

func TestRunNowRetriesAndReportsError(t *testing.T) {
	fake := newFakeS3()
	fake.failPut = true
	m, _ := testManager(t, fake)

	if _, err := m.RunNow(context.Background()); err == nil {
		t.Fatal("expected error when uploads fail")
	}
	if fake.puts < 2 {
		t.Errorf("puts = %d, want retries", fake.puts)
	}
	if m.Status().State != StateError {
		t.Errorf("state = %q, want %q", m.Status().State, StateError)
	}
}

func TestFetchRoundTrip(t *testing.T) {
	fake := newFakeS3()
	m, snap := testManager(t, fake)

	key, err := m.RunNow(context.Background())
	if err != nil {
		t.Fatalf("RunNow: %v", err)
	}

	got, err := m.Fetch(context.Background(), key)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.CurrentThreadID != snap.state.CurrentThreadID {
		t.Errorf("CurrentThreadID = %q, want %q", got.CurrentThreadID, snap.state.CurrentThreadID)
	}
}

func TestStatusCallbackSeesStateChanges(t *testing.T) {
	fake := newFakeS3()
	snap := &fakeSnapshotter{state: model.DefaultState()}
	var states []State
	m := NewManager(Config{
		S3:         S3Config{Bucket: "backups", AccessKey: "k", SecretKey: "s", Region: "auto"},
		Passphrase: "pw",
	}, snap, func(s Status) { states = append(states, s.State) }, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.client = fake

	if _, err := m.RunNow(context.Background()); err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	if len(states) != 2 || states[0] != StateRunning || states[1] != StateIdle {
		t.Errorf("callback states = %v, want [running idle]", states)
	}

	fake.failPut = true
	states = nil
	if _, err := m.RunNow(context.Background()); err == nil {
		t.Fatal("expected error when uploads fail")
	}
	if states[len(states)-1] != StateError {
		t.Errorf("final callback state = %v, want error", states[len(states)-1])
	}
}

func TestDisabledWithoutCredentials(t *testing.T) {
	m := NewManager(Config{}, &fakeSnapshotter{state: model.DefaultState()}, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	if m.Status().State != StateDisabled {
		t.Errorf("state = %q, want %q", m.Status().State, StateDisabled)
	}
	if _, err := m.RunNow(context.Background()); err == nil {
		t.Error("expected error from RunNow when disabled")
	}
}
