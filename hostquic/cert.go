package hostquic

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSFromCA 从 PEM 文件加载服务器 CA 证书并构建 TLS 配置。
func TLSFromCA(caFile string) (*tls.Config, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, err
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", caFile)
	}

	return &tls.Config{RootCAs: pool}, nil
}
