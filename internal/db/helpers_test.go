package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsSerializationFailure(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&mysql.MySQLError{Number: 1213}, true},
		{&mysql.MySQLError{Number: 1205}, true},
		{&mysql.MySQLError{Number: 1062}, false},
		{fmt.Errorf("wrapped: %w", &mysql.MySQLError{Number: 1213}), true},
		{errors.New("plain"), false},
		{nil, false},
	}
	for i, tc := range cases {
		if got := IsSerializationFailure(tc.err); got != tc.want {
			t.Fatalf("case %d: got %v want %v", i, got, tc.want)
		}
	}
}

func TestIsDuplicateEntry(t *testing.T) {
	if !IsDuplicateEntry(&mysql.MySQLError{Number: 1062}) {
		t.Fatalf("1062 harus duplicate entry")
	}
	if IsDuplicateEntry(&mysql.MySQLError{Number: 1213}) {
		t.Fatalf("1213 bukan duplicate entry")
	}
}
