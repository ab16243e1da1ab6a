package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptChoice asks the operator to pick one of options, retrying until a
// valid answer arrives.
func promptChoice(label string, options ...string) (string, error) {
	if !stdinIsTerminal() {
		return "", errors.New("no terminal available; pass the usb or tcp command explicitly")
	}
	r := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s [%s]: ", label, strings.Join(options, "/"))
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.ToLower(strings.TrimSpace(line))
		for _, o := range options {
			if line == o {
				return o, nil
			}
		}
	}
}

// promptAddr asks for the target's IPv4 address and port. Invalid input is
// a setup failure, reported before the tick loop ever starts.
func promptAddr() (string, error) {
	if !stdinIsTerminal() {
		return "", errors.New("no terminal available; pass --addr explicitly")
	}
	r := bufio.NewReader(os.Stdin)

	fmt.Print("Target IP address: ")
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	host := strings.TrimSpace(line)
	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return "", fmt.Errorf("invalid IPv4 address %q", host)
	}

	fmt.Print("Target port: ")
	line, err = r.ReadString('\n')
	if err != nil {
		return "", err
	}
	port, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid port %q", strings.TrimSpace(line))
	}

	return net.JoinHostPort(ip.String(), strconv.Itoa(port)), nil
}

// validateAddr checks an operator-supplied ip:port.
func validateAddr(addr string) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", addr, err)
	}
	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("invalid IPv4 address %q", host)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", portStr)
	}
	return nil
}
