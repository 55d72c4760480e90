package domain

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// KnativeServiceResource identifies serving.knative.dev/v1 services for the dynamic client
var KnativeServiceResource = schema.GroupVersionResource{
	Group:    "serving.knative.dev",
	Version:  "v1",
	Resource: "services",
}

// KnativeService is a serving.knative.dev/v1 Service without status. Templates are decoded
// strictly, so fields missing here are rejected rather than dropped.
type KnativeService struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec KnativeServiceSpec `json:"spec,omitempty"`
}

type KnativeServiceSpec struct {
	Template RevisionTemplateSpec `json:"template,omitempty"`
	Traffic  []TrafficTarget      `json:"traffic,omitempty"`
}

type RevisionTemplateSpec struct {
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec RevisionSpec `json:"spec,omitempty"`
}

type RevisionSpec struct {
	corev1.PodSpec `json:",inline"`

	ContainerConcurrency        *int64 `json:"containerConcurrency,omitempty"`
	TimeoutSeconds              *int64 `json:"timeoutSeconds,omitempty"`
	ResponseStartTimeoutSeconds *int64 `json:"responseStartTimeoutSeconds,omitempty"`
	IdleTimeoutSeconds          *int64 `json:"idleTimeoutSeconds,omitempty"`
}

type TrafficTarget struct {
	Tag               string `json:"tag,omitempty"`
	RevisionName      string `json:"revisionName,omitempty"`
	ConfigurationName string `json:"configurationName,omitempty"`
	LatestRevision    *bool  `json:"latestRevision,omitempty"`
	Percent           *int64 `json:"percent,omitempty"`
	URL               string `json:"url,omitempty"`
}

func (in *KnativeService) DeepCopyInto(out *KnativeService) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

func (in *KnativeService) DeepCopy() *KnativeService {
	if in == nil {
		return nil
	}
	out := new(KnativeService)
	in.DeepCopyInto(out)
	return out
}

func (in *KnativeServiceSpec) DeepCopyInto(out *KnativeServiceSpec) {
	*out = *in
	in.Template.DeepCopyInto(&out.Template)
	if in.Traffic != nil {
		out.Traffic = make([]TrafficTarget, len(in.Traffic))
		for i := range in.Traffic {
			in.Traffic[i].DeepCopyInto(&out.Traffic[i])
		}
	}
}

func (in *RevisionTemplateSpec) DeepCopyInto(out *RevisionTemplateSpec) {
	*out = *in
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
}

func (in *RevisionSpec) DeepCopyInto(out *RevisionSpec) {
	*out = *in
	in.PodSpec.DeepCopyInto(&out.PodSpec)
	out.ContainerConcurrency = copyInt64(in.ContainerConcurrency)
	out.TimeoutSeconds = copyInt64(in.TimeoutSeconds)
	out.ResponseStartTimeoutSeconds = copyInt64(in.ResponseStartTimeoutSeconds)
	out.IdleTimeoutSeconds = copyInt64(in.IdleTimeoutSeconds)
}

func (in *TrafficTarget) DeepCopyInto(out *TrafficTarget) {
	*out = *in
	if in.LatestRevision != nil {
		out.LatestRevision = new(bool)
		*out.LatestRevision = *in.LatestRevision
	}
	out.Percent = copyInt64(in.Percent)
}

func copyInt64(in *int64) *int64 {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}
