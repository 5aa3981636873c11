package resources_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/testds/resources"
	"github.com/jetsetilly/testds/test"
)

func TestJoinPath(t *testing.T) {
	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectSuccess(t, strings.HasSuffix(pth, filepath.Join("testds", "foo", "bar", "baz")))

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectSuccess(t, strings.HasSuffix(pth, filepath.Join("testds", "foo", "bar", "baz")))

	pth, err = resources.JoinPath("")
	test.ExpectEquality(t, err, nil)
	test.ExpectSuccess(t, strings.HasSuffix(pth, "testds"))
}
