package motion_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMotion(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Motion Suite")
}
