package core

// Sample manifest templates written by 'appctl init'. They are rendered with the
// configuration values listed on FileSystemTemplateRepository before decoding.

const SampleSecretTemplate = `apiVersion: v1
kind: Secret
metadata:
  namespace: {{ .Namespace }}
  labels:
    app.kubernetes.io/managed-by: appctl
type: Opaque
`

const SampleJobTemplate = `apiVersion: batch/v1
kind: Job
metadata:
  namespace: {{ .Namespace }}
  labels:
    app.kubernetes.io/managed-by: appctl
spec:
  backoffLimit: 0
  ttlSecondsAfterFinished: 600
  template:
    spec:
      restartPolicy: Never
      initContainers:
        - name: {{ .Containers.Puller }}
          image: {{ .Registry }}/appctl/source-puller:latest
          env:
            - name: TARGET_DIR
              value: /workspace
          volumeMounts:
            - name: workspace
              mountPath: /workspace
      containers:
        - name: {{ .Containers.Builder }}
          image: gcr.io/kaniko-project/executor:latest
          args:
            - --context=dir:///workspace
          volumeMounts:
            - name: workspace
              mountPath: /workspace
      volumes:
        - name: workspace
          emptyDir: {}
`

const SampleServiceTemplate = `apiVersion: serving.knative.dev/v1
kind: Service
metadata:
  namespace: {{ .Namespace }}
  labels:
    app.kubernetes.io/managed-by: appctl
spec:
  template:
    spec:
      containerConcurrency: 0
      timeoutSeconds: 300
      containers:
        - name: {{ .Containers.Service }}
          ports:
            - containerPort: 8080
`
