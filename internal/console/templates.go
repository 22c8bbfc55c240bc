package console

import (
	"net/url"
	"strings"
)

// escapeLogGroup double-encodes a CloudWatch Logs group name the way the
// console's fragment router expects: percent-encode, then replace "%" with
// "$25" so "/" becomes "$252F" and "#" becomes "$2523".
func escapeLogGroup(name string) string {
	return strings.ReplaceAll(url.PathEscape(name), "%", "$25")
}

// trimZeroPadding strips leading zeros from a numeric id. Amplify job ids
// are zero-padded in ARNs but not in console routes.
func trimZeroPadding(id string) string {
	trimmed := strings.TrimLeft(id, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// templates is the link table: service name to resource type to builder.
// A nil builder records a resource type that is known but has no modeled
// console link yet, which keeps the table usable as a coverage inventory.
//
// Every builder is a pure function of its Target. The URL shapes encode
// AWS's console routing conventions, an external contract that changes
// over time; when AWS changes a console URL scheme, only that one entry
// changes.
var templates = map[string]map[string]LinkFunc{
	"acm": {
		"certificate": func(t Target) string {
			return t.home("acm") + "#/certificates/" + t.Resource
		},
	},
	"acm-pca": {
		"certificate-authority": func(t Target) string {
			return t.home("acm-pca") + "#/certificateAuthorities/details?arn=" + url.QueryEscape(t.Raw)
		},
	},
	"amplify": {
		// Only job sub-resources have a stable console route:
		// apps/<appID>/branches/<branch>/jobs/<zero-padded id>.
		"apps": func(t Target) string {
			parts := strings.Split(t.Resource, "/")
			if len(parts) != 5 || parts[1] != "branches" || parts[3] != "jobs" {
				return ""
			}
			return t.home("amplify") + "#/" + parts[0] + "/" + parts[2] + "/" + trimZeroPadding(parts[4])
		},
	},
	"apigateway": {
		// API Gateway ARNs have no type segment, just a path under the
		// empty type: /restapis/<id>.
		"": func(t Target) string {
			id, ok := strings.CutPrefix(t.Resource, "restapis/")
			if !ok || strings.Contains(id, "/") {
				return ""
			}
			return t.home("apigateway") + "#/apis/" + id + "/resources"
		},
	},
	"appconfig": {
		"application": func(t Target) string {
			return t.url("/systems-manager/appconfig/applications/" + t.Resource + "?region=" + t.Region)
		},
	},
	"athena": {
		"workgroup": func(t Target) string {
			return t.home("athena") + "#/workgroups/details/" + t.Resource
		},
		"datacatalog": nil,
	},
	"autoscaling": {
		// Resource shape: <uuid>:autoScalingGroupName/<name>.
		"autoScalingGroup": func(t Target) string {
			_, name, found := strings.Cut(t.Resource, "autoScalingGroupName/")
			if !found {
				return ""
			}
			return t.home("ec2autoscaling") + "#/details/" + name + "?view=details"
		},
	},
	"backup": {
		"backup-vault": func(t Target) string {
			return t.home("backup") + "#/backupvaults/details/" + t.Resource
		},
		"backup-plan": func(t Target) string {
			return t.home("backup") + "#/backupplans/details/" + t.Resource
		},
		"recovery-point": nil,
	},
	"batch": {
		"job-queue": func(t Target) string {
			return t.home("batch") + "#queues/detail/" + t.Resource
		},
		"job-definition": func(t Target) string {
			return t.home("batch") + "#job-definition/detail/" + url.QueryEscape(t.Raw)
		},
		"compute-environment": func(t Target) string {
			return t.home("batch") + "#compute-environments/detail/" + t.Resource
		},
	},
	"cloud9": {
		"environment": func(t Target) string {
			return t.url("/cloud9/ide/" + t.Resource + "?region=" + t.Region)
		},
	},
	"cloudformation": {
		// The stack console routes on the full ARN, not the stack name.
		"stack": func(t Target) string {
			return t.home("cloudformation") + "#/stacks/stackinfo?stackId=" + url.QueryEscape(t.Raw)
		},
		"stackset": func(t Target) string {
			return t.home("cloudformation") + "#/stacksets/" + t.Resource + "/info"
		},
		"changeSet": nil,
	},
	"cloudfront": {
		"distribution": func(t Target) string {
			return t.url("/cloudfront/v3/home#/distributions/" + t.Resource)
		},
		"origin-access-identity": nil,
		"function":               nil,
	},
	"cloudtrail": {
		"trail": func(t Target) string {
			return t.home("cloudtrail") + "#/trails/" + t.Raw
		},
	},
	"cloudwatch": {
		"alarm": func(t Target) string {
			return t.home("cloudwatch") + "#alarmsV2:alarm/" + url.PathEscape(t.Resource)
		},
		"dashboard": func(t Target) string {
			return t.home("cloudwatch") + "#dashboards:name=" + t.Resource
		},
		"insight-rule": nil,
	},
	"codeartifact": {
		"domain": func(t Target) string {
			return t.url("/codesuite/codeartifact/d/" + t.Resource + "?region=" + t.Region)
		},
		"repository": func(t Target) string {
			domain := t.PathAllButLast()
			if domain == "" {
				return ""
			}
			return t.url("/codesuite/codeartifact/d/" + domain + "/r/" + t.PathLast() + "?region=" + t.Region)
		},
		"package": nil,
	},
	"codebuild": {
		"project": func(t Target) string {
			return t.url("/codesuite/codebuild/" + t.Account + "/projects/" + t.Resource + "/history?region=" + t.Region)
		},
		"build": nil,
	},
	"codecommit": {
		"": func(t Target) string {
			return t.url("/codesuite/codecommit/repositories/" + t.Resource + "/browse?region=" + t.Region)
		},
	},
	"codedeploy": {
		"application": func(t Target) string {
			return t.url("/codesuite/codedeploy/applications/" + t.Resource + "?region=" + t.Region)
		},
		"deploymentgroup":  nil,
		"deploymentconfig": nil,
	},
	"codepipeline": {
		"": func(t Target) string {
			return t.url("/codesuite/codepipeline/pipelines/" + t.Resource + "/view?region=" + t.Region)
		},
	},
	"cognito-identity": {
		// Identity pool ids contain a colon (<region>:<uuid>), which the
		// tokenizer stores as resource plus revision; reassemble it.
		"identitypool": func(t Target) string {
			id := t.Resource
			if t.ResourceRevision != "" {
				id += ":" + t.ResourceRevision
			}
			return t.url("/cognito/pool/edit/?region=" + t.Region + "&id=" + id)
		},
	},
	"cognito-idp": {
		"userpool": func(t Target) string {
			return t.url("/cognito/users/?region=" + t.Region + "#/pool/" + t.Resource + "/details")
		},
	},
	"config": {
		"config-rule": func(t Target) string {
			return t.home("config") + "#/rules/details?configRuleName=" + t.Resource
		},
	},
	"dynamodb": {
		"table": func(t Target) string {
			return t.home("dynamodbv2") + "#table?name=" + t.Resource
		},
		"index":        nil,
		"global-table": nil,
	},
	"ec2": {
		"instance": func(t Target) string {
			return t.home("ec2") + "#InstanceDetails:instanceId=" + t.Resource
		},
		"image": func(t Target) string {
			return t.home("ec2") + "#ImageDetails:imageId=" + t.Resource
		},
		"volume": func(t Target) string {
			return t.home("ec2") + "#VolumeDetails:volumeId=" + t.Resource
		},
		"snapshot": func(t Target) string {
			return t.home("ec2") + "#SnapshotDetails:snapshotId=" + t.Resource
		},
		"security-group": func(t Target) string {
			return t.home("ec2") + "#SecurityGroup:groupId=" + t.Resource
		},
		"key-pair": func(t Target) string {
			return t.home("ec2") + "#KeyPairs:search=" + t.Resource
		},
		"network-interface": func(t Target) string {
			return t.home("ec2") + "#NetworkInterface:networkInterfaceId=" + t.Resource
		},
		"elastic-ip": func(t Target) string {
			return t.home("ec2") + "#ElasticIpDetails:AllocationId=" + t.Resource
		},
		"launch-template": func(t Target) string {
			return t.home("ec2") + "#LaunchTemplateDetails:launchTemplateId=" + t.Resource
		},
		"vpc": func(t Target) string {
			return t.home("vpcconsole") + "#VpcDetails:VpcId=" + t.Resource
		},
		"subnet": func(t Target) string {
			return t.home("vpcconsole") + "#SubnetDetails:subnetId=" + t.Resource
		},
		"route-table": func(t Target) string {
			return t.home("vpcconsole") + "#RouteTableDetails:routeTableId=" + t.Resource
		},
		"internet-gateway": func(t Target) string {
			return t.home("vpcconsole") + "#InternetGateway:internetGatewayId=" + t.Resource
		},
		"natgateway": func(t Target) string {
			return t.home("vpcconsole") + "#NatGatewayDetails:natGatewayId=" + t.Resource
		},
		"vpc-endpoint": func(t Target) string {
			return t.home("vpcconsole") + "#EndpointDetails:vpcEndpointId=" + t.Resource
		},
		"vpc-peering-connection": func(t Target) string {
			return t.home("vpcconsole") + "#PeeringConnectionDetails:VpcPeeringConnectionId=" + t.Resource
		},
		"transit-gateway": func(t Target) string {
			return t.home("vpcconsole") + "#TransitGatewayDetails:transitGatewayId=" + t.Resource
		},
		"spot-instances-request": nil,
		"capacity-reservation":   nil,
		"dedicated-host":         nil,
		"placement-group":        nil,
	},
	"ecr": {
		"repository": func(t Target) string {
			return t.url("/ecr/repositories/private/" + t.Account + "/" + t.Resource + "?region=" + t.Region)
		},
	},
	"ecs": {
		"cluster": func(t Target) string {
			return t.home("ecs") + "#/clusters/" + t.Resource + "/services"
		},
		// Service ARNs carry <cluster>/<service> in the resource id.
		"service": func(t Target) string {
			cluster := t.PathAllButLast()
			if cluster == "" {
				return ""
			}
			return t.home("ecs") + "#/clusters/" + cluster + "/services/" + t.PathLast() + "/details"
		},
		"task": func(t Target) string {
			cluster := t.PathAllButLast()
			if cluster == "" {
				return ""
			}
			return t.home("ecs") + "#/clusters/" + cluster + "/tasks/" + t.PathLast() + "/details"
		},
		// Task definition ARNs end in :<revision>.
		"task-definition": func(t Target) string {
			link := t.home("ecs") + "#/taskDefinitions/" + t.Resource
			if t.ResourceRevision != "" {
				link += "/" + t.ResourceRevision
			}
			return link
		},
		"container-instance": nil,
		"capacity-provider":  nil,
	},
	"eks": {
		"cluster": func(t Target) string {
			return t.home("eks") + "#/clusters/" + t.Resource
		},
		"nodegroup": func(t Target) string {
			parts := strings.Split(t.Resource, "/")
			if len(parts) < 2 {
				return ""
			}
			return t.home("eks") + "#/clusters/" + parts[0] + "/nodegroups/" + parts[1]
		},
		"fargateprofile": nil,
		"addon":          nil,
	},
	"elasticache": {
		"cluster": func(t Target) string {
			return t.home("elasticache") + "#/redis/" + t.Resource
		},
		"replicationgroup": nil,
		"subnetgroup":      nil,
		"parametergroup":   nil,
	},
	"elasticbeanstalk": {
		"application": func(t Target) string {
			return t.home("elasticbeanstalk") + "#/application/overview?applicationName=" + t.Resource
		},
		"environment": func(t Target) string {
			return t.home("elasticbeanstalk") + "#/environment/dashboard?environmentName=" + t.PathLast()
		},
		"applicationversion":    nil,
		"configurationtemplate": nil,
	},
	"elasticfilesystem": {
		"file-system": func(t Target) string {
			return t.home("efs") + "#/file-systems/" + t.Resource
		},
		"access-point": nil,
	},
	"elasticloadbalancing": {
		// ALB/NLB resource ids are app/<name>/<id> or net/<name>/<id>;
		// classic load balancers are a bare name.
		"loadbalancer": func(t Target) string {
			if strings.HasPrefix(t.Resource, "app/") || strings.HasPrefix(t.Resource, "net/") {
				return t.home("ec2") + "#LoadBalancer:loadBalancerArn=" + url.QueryEscape(t.Raw)
			}
			return t.home("ec2") + "#LoadBalancers:search=" + t.Resource
		},
		"targetgroup": func(t Target) string {
			return t.home("ec2") + "#TargetGroup:targetGroupArn=" + url.QueryEscape(t.Raw)
		},
		"listener":      nil,
		"listener-rule": nil,
	},
	"elasticmapreduce": {
		"cluster": func(t Target) string {
			return t.home("elasticmapreduce") + "#/clusterDetails/" + t.Resource
		},
	},
	"es": {
		"domain": func(t Target) string {
			return t.home("esv3") + "#opensearch/domains/" + t.Resource
		},
	},
	"events": {
		// Rule ARNs are rule/<name> for the default bus and
		// rule/<bus>/<name> for custom buses.
		"rule": func(t Target) string {
			bus := t.PathAllButLast()
			if bus == "" {
				bus = "default"
			}
			return t.home("events") + "#/eventbus/" + bus + "/rules/" + t.PathLast()
		},
		"event-bus": func(t Target) string {
			return t.home("events") + "#/eventbus/" + t.Resource
		},
		"archive": nil,
	},
	"firehose": {
		"deliverystream": func(t Target) string {
			return t.home("firehose") + "#/details/" + t.Resource
		},
	},
	"gamelift": {
		"fleet": nil,
		"alias": nil,
	},
	"glacier": {
		"vaults": func(t Target) string {
			return t.home("glacier") + "#/vaults/" + t.Resource
		},
	},
	"globalaccelerator": {
		"accelerator": func(t Target) string {
			return t.url("/globalaccelerator/home#AcceleratorDetails:AcceleratorArn=" + url.QueryEscape(t.Raw))
		},
	},
	"glue": {
		"database": func(t Target) string {
			return t.home("glue") + "#/v2/data-catalog/databases/view/" + t.Resource
		},
		"table": func(t Target) string {
			db := t.PathAllButLast()
			if db == "" {
				return ""
			}
			return t.home("glue") + "#/v2/data-catalog/tables/view/" + t.PathLast() + "?database=" + db
		},
		"crawler": func(t Target) string {
			return t.home("glue") + "#/v2/data-catalog/crawlers/view/" + t.Resource
		},
		"job": func(t Target) string {
			return t.home("glue") + "#/v2/etl-configuration/jobs/view/" + t.Resource
		},
		"trigger": nil,
	},
	"guardduty": {
		"detector": func(t Target) string {
			return t.home("guardduty") + "#/findings?detectorId=" + t.Resource
		},
	},
	"iam": {
		// IAM is global: no region parameter anywhere.
		"": func(t Target) string {
			if t.Resource != "root" {
				return ""
			}
			return t.globalHome("iam")
		},
		"user": func(t Target) string {
			return t.globalHome("iam") + "#/users/" + t.PathLast()
		},
		"role": func(t Target) string {
			return t.globalHome("iam") + "#/roles/" + t.PathLast()
		},
		"group": func(t Target) string {
			return t.globalHome("iam") + "#/groups/" + t.PathLast()
		},
		// The policy console routes on the full ARN.
		"policy": func(t Target) string {
			return t.globalHome("iam") + "#/policies/" + t.Raw
		},
		"instance-profile":   nil,
		"saml-provider":      nil,
		"oidc-provider":      nil,
		"mfa":                nil,
		"server-certificate": nil,
	},
	"iot": {
		"thing": func(t Target) string {
			return t.home("iot") + "#/thing/" + t.Resource
		},
		"policy": nil,
		"rule":   nil,
	},
	"kafka": {
		"cluster": func(t Target) string {
			return t.home("msk") + "#/cluster/" + url.QueryEscape(t.Raw) + "/view"
		},
	},
	"kinesis": {
		"stream": func(t Target) string {
			return t.home("kinesis") + "#/streams/details/" + t.Resource
		},
	},
	"kinesisanalytics": {
		"application": func(t Target) string {
			return t.home("kinesisanalytics") + "#/application/" + t.Resource + "/details"
		},
	},
	"kinesisvideo": {
		// Stream ARNs are stream/<name>/<creation timestamp>.
		"stream": func(t Target) string {
			name := t.PathAllButLast()
			if name == "" {
				name = t.Resource
			}
			return t.home("kinesisvideo") + "#/streams/streamName/" + name
		},
	},
	"kms": {
		"key": func(t Target) string {
			return t.home("kms") + "#/kms/keys/" + t.Resource
		},
		"alias": nil,
	},
	"lambda": {
		// Resource id may carry a version or alias qualifier after the
		// function name: function:<name>[:<qualifier>].
		"function": func(t Target) string {
			qualifiers := t.Qualifiers()
			link := t.home("lambda") + "#/functions/" + qualifiers[0]
			if len(qualifiers) > 1 {
				link += "/versions/" + qualifiers[1]
			}
			return link + "?tab=code"
		},
		"layer": func(t Target) string {
			qualifiers := t.Qualifiers()
			if len(qualifiers) < 2 {
				return t.home("lambda") + "#/layers/" + qualifiers[0]
			}
			return t.home("lambda") + "#/layers/" + qualifiers[0] + "/versions/" + qualifiers[1]
		},
		"event-source-mapping": nil,
	},
	"logs": {
		// Group names contain slashes and the ARN carries a trailing
		// :* qualifier; the console wants the name double-escaped.
		"log-group": func(t Target) string {
			name := t.Qualifiers()[0]
			return t.home("cloudwatch") + "#logsV2:log-groups/log-group/" + escapeLogGroup(name)
		},
		"destination": nil,
	},
	"mq": {
		// Broker ARNs are broker:<name>:<id>; the console routes on id.
		"broker": func(t Target) string {
			qualifiers := t.Qualifiers()
			id := qualifiers[len(qualifiers)-1]
			return t.home("amazon-mq") + "#/brokers/details?id=" + id
		},
		"configuration": nil,
	},
	"organizations": {
		"account": func(t Target) string {
			return t.url("/organizations/v2/home/accounts/" + t.PathLast())
		},
		"ou": func(t Target) string {
			return t.url("/organizations/v2/home/organizational-units/" + t.PathLast())
		},
		"policy": nil,
		"root":   nil,
	},
	"qldb": {
		"ledger": func(t Target) string {
			return t.home("qldb") + "#ledgers/details/" + t.Resource
		},
	},
	"rds": {
		"db": func(t Target) string {
			return t.home("rds") + "#database:id=" + t.Resource + ";is-cluster=false"
		},
		"cluster": func(t Target) string {
			return t.home("rds") + "#database:id=" + t.Resource + ";is-cluster=true"
		},
		"snapshot": func(t Target) string {
			return t.home("rds") + "#db-snapshot:id=" + t.Resource
		},
		"cluster-snapshot": func(t Target) string {
			return t.home("rds") + "#db-cluster-snapshot:id=" + t.Resource
		},
		"subgrp": func(t Target) string {
			return t.home("rds") + "#db-subnet-group:id=" + t.Resource
		},
		"pg":         nil,
		"cluster-pg": nil,
		"og":         nil,
		"secgrp":     nil,
	},
	"redshift": {
		"cluster": func(t Target) string {
			return t.home("redshiftv2") + "#cluster-details?cluster=" + t.Resource
		},
		"namespace": nil,
		"dbuser":    nil,
	},
	"route53": {
		"hostedzone": func(t Target) string {
			return t.url("/route53/v2/hostedzones#ListRecordSets/" + t.Resource)
		},
		"healthcheck": func(t Target) string {
			return t.url("/route53/healthchecks/home#/details/" + t.Resource)
		},
		"change": nil,
	},
	"route53resolver": {
		"resolver-rule": func(t Target) string {
			return t.home("route53resolver") + "#/resolver-rules/" + t.Resource
		},
		"resolver-endpoint": nil,
	},
	"s3": {
		// Bucket ARNs have no type segment. The S3 console lives on its
		// own subdomain and takes no region parameter.
		"": func(t Target) string {
			return "https://s3." + t.Console + "/s3/buckets/" + t.Resource
		},
		"accesspoint": nil,
	},
	"sagemaker": {
		"notebook-instance": func(t Target) string {
			return t.home("sagemaker") + "#/notebook-instances/" + t.Resource
		},
		"endpoint": func(t Target) string {
			return t.home("sagemaker") + "#/endpoints/" + t.Resource
		},
		"training-job": func(t Target) string {
			return t.home("sagemaker") + "#/jobs/" + t.Resource
		},
		"model": func(t Target) string {
			return t.home("sagemaker") + "#/models/" + t.Resource
		},
		"endpoint-config": nil,
	},
	"secretsmanager": {
		// Secret ARNs append a random 6-character suffix to the name;
		// the console wants the bare name.
		"secret": func(t Target) string {
			name := t.Qualifiers()[0]
			if idx := strings.LastIndex(name, "-"); idx > 0 && len(name)-idx-1 == 6 {
				name = name[:idx]
			}
			return t.home("secretsmanager") + "#!/secret?name=" + url.QueryEscape(name)
		},
	},
	"servicediscovery": {
		"namespace": nil,
		"service":   nil,
	},
	"ses": {
		"identity": func(t Target) string {
			return t.home("ses") + "#/verified-identities/" + t.Resource
		},
		"configuration-set": nil,
	},
	"sns": {
		// Topic ARNs have no type segment; the console routes on the
		// full ARN.
		"": func(t Target) string {
			return t.url("/sns/v3/home?region=" + t.Region + "#/topic/" + t.Raw)
		},
	},
	"sqs": {
		// The console fragment takes the URL-encoded queue URL, which is
		// reassembled from region, account and queue name.
		"": func(t Target) string {
			queueURL := "https://sqs." + t.Region + ".amazonaws.com/" + t.Account + "/" + t.Resource
			return t.url("/sqs/v2/home?region=" + t.Region + "#/queues/" + url.QueryEscape(queueURL))
		},
	},
	"ssm": {
		// Parameter names are hierarchical; slashes must be escaped in
		// the path segment.
		"parameter": func(t Target) string {
			return t.url("/systems-manager/parameters/" + url.PathEscape(t.Resource) + "/description?region=" + t.Region)
		},
		"document": func(t Target) string {
			return t.url("/systems-manager/documents/" + t.Resource + "/description?region=" + t.Region)
		},
		"patchbaseline":         nil,
		"maintenancewindow":     nil,
		"managed-instance":      nil,
		"automation-definition": nil,
	},
	"states": {
		"stateMachine": func(t Target) string {
			return t.home("states") + "#/statemachines/view/" + t.Raw
		},
		"execution": func(t Target) string {
			return t.home("states") + "#/executions/details/" + t.Raw
		},
		"activity": nil,
	},
	"storagegateway": {
		"gateway": func(t Target) string {
			return t.home("storagegateway") + "#/gateways/" + t.Resource
		},
		"share": nil,
	},
	"sts": {
		"assumed-role":   nil,
		"federated-user": nil,
	},
	"transfer": {
		"server": func(t Target) string {
			return t.home("transfer") + "#/servers/" + t.Resource
		},
		"user": nil,
	},
	"waf": {
		"webacl": nil,
		"rule":   nil,
	},
	"wafv2": {
		"regional": nil,
		"global":   nil,
	},
	"workspaces": {
		"workspace": nil,
		"directory": nil,
	},
	"xray": {
		"group":         nil,
		"sampling-rule": nil,
	},
}
