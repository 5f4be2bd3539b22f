package services

import (
	"os"
	"strings"

	"k8s-hello/logger"

	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/validation"
	"k8s.io/client-go/rest"
	"sigs.k8s.io/controller-runtime/pkg/client/config"
)

const (
	// DefaultNamespace is used when no valid namespace can be found.
	DefaultNamespace = "default"

	serviceAccountNamespaceFile = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"
)

// RuntimeInfo - 실행 환경 정보
type RuntimeInfo struct {
	InCluster bool   `json:"in_cluster"`
	APIHost   string `json:"api_host,omitempty"`
	Namespace string `json:"namespace"`
	PodName   string `json:"pod_name,omitempty"`
}

// RuntimeDetector finds out whether the process runs inside a cluster.
// The function fields are swapped out in tests.
type RuntimeDetector struct {
	InClusterConfig func() (*rest.Config, error)
	KubeConfig      func() (*rest.Config, error)
	Getenv          func(string) string
	NamespaceFile   string
}

// NewRuntimeDetector returns a detector backed by client-go and
// controller-runtime config loading.
func NewRuntimeDetector() *RuntimeDetector {
	return &RuntimeDetector{
		InClusterConfig: rest.InClusterConfig,
		KubeConfig:      config.GetConfig,
		Getenv:          os.Getenv,
		NamespaceFile:   serviceAccountNamespaceFile,
	}
}

// DetectRuntime - 기본 detector로 실행 환경 확인
func DetectRuntime() RuntimeInfo {
	return NewRuntimeDetector().Detect()
}

// Detect never fails. Missing cluster access only means InCluster is false.
func (d *RuntimeDetector) Detect() RuntimeInfo {
	info := RuntimeInfo{
		Namespace: d.namespace(),
		PodName:   d.podName(),
	}

	// 클러스터 내부에서 실행 시 in-cluster config 사용
	if cfg, err := d.InClusterConfig(); err == nil {
		info.InCluster = true
		info.APIHost = cfg.Host
		return info
	}

	// 로컬 개발 환경: kubeconfig
	cfg, err := d.KubeConfig()
	if err != nil {
		logger.Logger.Debug("Kubernetes config 없음", zap.Error(err))
		return info
	}
	info.APIHost = cfg.Host
	return info
}

func (d *RuntimeDetector) namespace() string {
	ns := strings.TrimSpace(d.Getenv("POD_NAMESPACE"))
	if ns == "" && d.NamespaceFile != "" {
		if data, err := os.ReadFile(d.NamespaceFile); err == nil {
			ns = strings.TrimSpace(string(data))
		}
	}
	if ns == "" {
		return DefaultNamespace
	}
	if errs := validation.IsDNS1123Label(ns); len(errs) > 0 {
		logger.Logger.Warn("잘못된 namespace, 기본값 사용",
			zap.String("namespace", ns),
			zap.Strings("errors", errs),
		)
		return DefaultNamespace
	}
	return ns
}

func (d *RuntimeDetector) podName() string {
	if name := d.Getenv("POD_NAME"); name != "" {
		return name
	}
	return d.Getenv("HOSTNAME")
}
