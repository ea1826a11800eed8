// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestUpsertConfigMap(t *testing.T) {
	result := &fgaModelResult{StoreId: "store", ModelId: "model"}

	tests := []struct {
		name     string
		resource string
		existing []*corev1.ConfigMap
		wantErr  bool
		expected map[string]string
	}{
		{
			name:     "creates missing configmap",
			resource: "identity/fga",
			expected: map[string]string{storeIDKey: "store", modelIDKey: "model"},
		},
		{
			name:     "updates existing configmap keeping other keys",
			resource: "identity/fga",
			existing: []*corev1.ConfigMap{{
				ObjectMeta: metav1.ObjectMeta{Name: "fga", Namespace: "identity"},
				Data:       map[string]string{"LOG_LEVEL": "debug", storeIDKey: "old"},
			}},
			expected: map[string]string{"LOG_LEVEL": "debug", storeIDKey: "store", modelIDKey: "model"},
		},
		{
			name:     "updates configmap without data",
			resource: "identity/fga",
			existing: []*corev1.ConfigMap{{ObjectMeta: metav1.ObjectMeta{Name: "fga", Namespace: "identity"}}},
			expected: map[string]string{storeIDKey: "store", modelIDKey: "model"},
		},
		{
			name:     "rejects resource without namespace",
			resource: "fga",
			wantErr:  true,
		},
		{
			name:     "rejects nested resource",
			resource: "identity/fga/extra",
			wantErr:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clientset := fake.NewSimpleClientset()
			for _, cm := range test.existing {
				if _, err := clientset.CoreV1().ConfigMaps(cm.Namespace).Create(context.Background(), cm, metav1.CreateOptions{}); err != nil {
					t.Fatalf("failed to seed configmap: %v", err)
				}
			}

			err := upsertConfigMap(context.Background(), clientset, test.resource, result)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			cm, err := clientset.CoreV1().ConfigMaps("identity").Get(context.Background(), "fga", metav1.GetOptions{})
			if err != nil {
				t.Fatalf("configmap not found: %v", err)
			}
			if len(cm.Data) != len(test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, cm.Data)
			}
			for k, v := range test.expected {
				if cm.Data[k] != v {
					t.Errorf("expected %s=%s, got %s", k, v, cm.Data[k])
				}
			}
		})
	}
}
