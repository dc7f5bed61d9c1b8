// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
}

func TestNewHTTPClient_BaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://lara.test/", want: "https://lara.test"},
		{in: "http://127.0.0.1:9000", want: "http://127.0.0.1:9000"},
	}

	for _, tt := range tests {
		client := NewHTTPClient(tt.in, 0)
		if client.BaseURL != tt.want {
			t.Errorf("%s: expected base url %s, got %s", tt.in, tt.want, client.BaseURL)
		}
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("localhost:8080", 3*time.Second)

	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("localhost:8080", 0)
	client2 := NewHTTPClient("localhost:8080", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent resty clients")
	}
}
