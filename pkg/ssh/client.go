package ssh

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Client runs console commands on a remote host. It satisfies
// runner.CommandRunner so the rest of the console does not care whether the
// sandbox lives locally or on another machine.
type Client struct {
	client *ssh.Client
	sftp   *sftp.Client
}

func NewClient(host string, port int, user, password string) (*Client, error) {
	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         10 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	conn, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %v", err)
	}

	sftpClient, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create sftp client: %v", err)
	}

	return &Client{
		client: conn,
		sftp:   sftpClient,
	}, nil
}

func (c *Client) Close() {
	if c.sftp != nil {
		c.sftp.Close()
	}
	if c.client != nil {
		c.client.Close()
	}
}

// Run executes a remote command and returns its output (Stdout + Stderr).
func (c *Client) Run(cmd string) (string, error) {
	session, err := c.client.NewSession()
	if err != nil {
		return "", err
	}
	defer session.Close()

	output, err := session.CombinedOutput(cmd)
	outStr := string(output)
	if err != nil {
		return outStr, fmt.Errorf("command '%s' failed: %v, output: %s", cmd, err, strings.TrimSpace(outStr))
	}
	return strings.TrimSpace(outStr), nil
}

// WriteFile writes data to a remote file, creating parent directories first.
func (c *Client) WriteFile(remotePath string, data []byte) error {
	remotePath = filepath.ToSlash(remotePath)
	dir := path.Dir(remotePath)

	if _, err := c.Run(fmt.Sprintf("mkdir -p %s", dir)); err != nil {
		return fmt.Errorf("mkdir -p %s failed: %v", dir, err)
	}

	f, err := c.sftp.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp create file %s failed: %v", remotePath, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("sftp transfer failed: %v", err)
	}

	f.Chmod(0o644)
	return nil
}
