//go:build !unix

package httpd

func retryableAccept(err error) bool { return false }
