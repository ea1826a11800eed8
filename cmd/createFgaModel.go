// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/org-access-service/internal/authorization"
	"github.com/canonical/org-access-service/internal/logging"
	"github.com/canonical/org-access-service/internal/monitoring"
	"github.com/canonical/org-access-service/internal/openfga"
	"github.com/canonical/org-access-service/internal/tracing"
)

const (
	StoreName = "org-access-service"

	storeIDKey = "OPENFGA_STORE_ID"
	modelIDKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type fgaModelResult struct {
	StoreId string `json:"store_id"`
	ModelId string `json:"model_id"`
	// StoreCreated is set when no store id was passed in
	StoreCreated bool `json:"store_created"`
}

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the openfga model for privileged admins and tenant roles",
	Long:  `Creates the openfga store (unless one is given) and writes the authorization model used by the org access service`,
	Run: func(cmd *cobra.Command, args []string) {
		apiUrl, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeId, _ := cmd.Flags().GetString("fga-store-id")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

		result, err := createModel(cmd.Context(), apiUrl, apiToken, storeId, verbose)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		if configMapResource != "" {
			clientset, err := kubeClient(kubeconfigPath)
			if err == nil {
				err = upsertConfigMap(cmd.Context(), clientset, configMapResource, result)
			}
			if err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to update configmap: %w", err))
				os.Exit(1)
			}
			cmd.Printf("ConfigMap %s updated\n", configMapResource)
		}

		if outputFormat == "json" {
			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to encode output: %v", err))
				os.Exit(1)
			}
			return
		}

		cmd.Printf("Created model: %s\n", result.ModelId)
		if result.StoreCreated {
			cmd.Printf("Created store: %s\n", result.StoreId)
		}
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap receiving the store and model ids, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func createModel(ctx context.Context, apiUrl, apiToken, storeId string, verbose bool) (*fgaModelResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	u, err := url.Parse(apiUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	fgaClient := openfga.NewClient(
		openfga.NewConfig(u.Scheme, u.Host, storeId, apiToken, "", verbose, tracer, monitor, logger),
	)

	result := &fgaModelResult{StoreId: storeId}
	if storeId == "" {
		if result.StoreId, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		result.StoreCreated = true
		fgaClient.SetStoreID(ctx, result.StoreId)
	}

	model := authorization.NewAuthorizationModelProvider("v0").GetModel()

	result.ModelId, err = fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: model.TypeDefinitions,
			SchemaVersion:   model.SchemaVersion,
			Conditions:      model.Conditions,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return result, nil
}

func kubeClient(kubeconfigPath string) (kubernetes.Interface, error) {
	var (
		config *rest.Config
		err    error
	)

	switch {
	case kubeconfigPath != "":
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	default:
		if config, err = rest.InClusterConfig(); err != nil {
			// running outside a cluster, use the default loading rules
			config, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
				clientcmd.NewDefaultClientConfigLoadingRules(),
				&clientcmd.ConfigOverrides{},
			).ClientConfig()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	return kubernetes.NewForConfig(config)
}

// upsertConfigMap writes the store and model ids into namespace/name, creating the configmap if missing.
func upsertConfigMap(ctx context.Context, clientset kubernetes.Interface, resource string, result *fgaModelResult) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource %q, expected namespace/name", resource)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data: map[string]string{
				storeIDKey: result.StoreId,
				modelIDKey: result.ModelId,
			},
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", resource, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", resource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}
	cm.Data[storeIDKey] = result.StoreId
	cm.Data[modelIDKey] = result.ModelId

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", resource, err)
	}

	return nil
}
