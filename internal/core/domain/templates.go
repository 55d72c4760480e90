package domain

import (
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
)

// Templates holds the prototype manifests every materialization starts from.
// The prototypes are never handed out; each accessor returns a fresh deep copy.
type Templates struct {
	secret  *corev1.Secret
	job     *batchv1.Job
	service *KnativeService
}

func NewTemplates(secret *corev1.Secret, job *batchv1.Job, service *KnativeService) *Templates {
	return &Templates{
		secret:  secret,
		job:     job,
		service: service,
	}
}

func (t *Templates) Secret() *corev1.Secret {
	return t.secret.DeepCopy()
}

func (t *Templates) Job() *batchv1.Job {
	return t.job.DeepCopy()
}

func (t *Templates) Service() *KnativeService {
	return t.service.DeepCopy()
}
