package database

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
)

type scanPage struct {
	keys   []string
	cursor uint64
	err    error
}

type fakeKeyScanner struct {
	pages   []scanPage
	call    int
	deleted []string
	delErr  error
}

func (f *fakeKeyScanner) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	page := f.pages[f.call]
	f.call++
	return redis.NewScanCmdResult(page.keys, page.cursor, page.err)
}

func (f *fakeKeyScanner) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.delErr != nil {
		return redis.NewIntResult(0, f.delErr)
	}
	f.deleted = append(f.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestScanAndDeleteWalksAllPages(t *testing.T) {
	fake := &fakeKeyScanner{pages: []scanPage{
		{keys: []string{"leaderboard:global", "leaderboard:chapter:c1:b1"}, cursor: 7},
		{keys: []string{"leaderboard:chapter:c2:b1"}, cursor: 0},
	}}

	deleted, err := scanAndDelete(context.Background(), fake, "leaderboard:*")
	if err != nil {
		t.Fatalf("scanAndDelete: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}
	if len(fake.deleted) != 3 {
		t.Errorf("deleted keys = %v, want all three", fake.deleted)
	}
	if fake.call != 2 {
		t.Errorf("scan calls = %d, want 2", fake.call)
	}
}

func TestScanAndDeleteEmptyKeyspace(t *testing.T) {
	fake := &fakeKeyScanner{pages: []scanPage{{cursor: 0}}}

	deleted, err := scanAndDelete(context.Background(), fake, "leaderboard:*")
	if err != nil {
		t.Fatalf("scanAndDelete: %v", err)
	}
	if deleted != 0 || len(fake.deleted) != 0 {
		t.Errorf("deleted = %d (%v), want none", deleted, fake.deleted)
	}
}

func TestScanAndDeleteStopsOnScanError(t *testing.T) {
	fake := &fakeKeyScanner{pages: []scanPage{
		{keys: []string{"leaderboard:global"}, cursor: 3},
		{err: errors.New("connection lost")},
	}}

	deleted, err := scanAndDelete(context.Background(), fake, "leaderboard:*")
	if err == nil {
		t.Fatal("expected error from second page")
	}
	if deleted != 1 {
		t.Errorf("deleted before error = %d, want 1", deleted)
	}
}
