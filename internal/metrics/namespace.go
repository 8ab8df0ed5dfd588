package metrics

const Namespace = "checklist"
